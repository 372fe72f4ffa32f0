package vrptw

import (
	"log"
	"os"
)

var (
	logSpam  *log.Logger
	logDebug *log.Logger
	logInfo  *log.Logger
	logErr   *log.Logger
	maxLvl   int
)

// InitLoggers sets up the leveled loggers. 1 logs errors only, 4 logs the
// per-edge spam of the checker.
func InitLoggers(logLvl int) {
	maxLvl = logLvl
	logSpam = log.New(os.Stdout, "SPAM", log.Ldate|log.Ltime|log.Lshortfile)
	logDebug = log.New(os.Stdout, "DEBUG", log.Ldate|log.Ltime|log.Lshortfile)
	logInfo = log.New(os.Stdout, "INFO", log.Ldate|log.Ltime|log.Lshortfile)
	logErr = log.New(os.Stdout, "ERROR", log.Ldate|log.Ltime|log.Lshortfile)
}

// Log writes the message if msgLvl is within the configured level.
// Callers that never ran InitLoggers get level 2 (errors and infos).
func Log(msgLvl int, printF string, args ...interface{}) {
	if logErr == nil {
		InitLoggers(2)
	}
	if msgLvl > maxLvl {
		return
	}
	switch msgLvl {
	case 1:
		logErr.Printf(printF, args...)
	case 2:
		logInfo.Printf(printF, args...)
	case 3:
		logDebug.Printf(printF, args...)
	case 4:
		logSpam.Printf(printF, args...)
	}
}
