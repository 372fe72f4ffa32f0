package vrptw

// Instance is a VRPTW problem instance. Node 0 is the depot, all other
// nodes are customers. The per-node slices all have length Dimension and
// are fully populated by ReadInstance before any query.
type Instance struct {
	Name    string `json:"name"`
	Comment string `json:"comment"`
	Type    string `json:"type"`

	Dimension      int    `json:"dimension"`
	EdgeWeightType string `json:"edge_weight_type"`
	MaxVehicles    int    `json:"max_vehicles"`
	Capacity       int    `json:"capacity"`

	NodeCoordinates [][]float64 `json:"node_coordinates"`
	Demands         []int       `json:"demands"`
	ReadyTimes      []int       `json:"ready_times"`
	DueDates        []int       `json:"due_dates"`
	ServiceTimes    []int       `json:"service_times"`

	Solution *Solution `json:"solution,omitempty"`
}

// Solution is a candidate solution for one instance. Routes holds the
// customer sequence of every vehicle, the depot round trip is implicit.
// Cost and Feasible are only meaningful after Check has accepted the
// solution. DeclaredCost is the self-reported value from the report file
// and is never trusted for scoring.
type Solution struct {
	Feasible     bool    `json:"feasible"`
	Cost         float64 `json:"cost"`
	DeclaredCost float64 `json:"declared_cost"`
	Routes       [][]int `json:"routes"`

	Time    string  `json:"time"`
	System  SysInfo `json:"system"`
	Comment string  `json:"comment"`
}

// SysInfo saves the basic system information
type SysInfo struct {
	Platform string
	CPU      string
	RAM      string
}
