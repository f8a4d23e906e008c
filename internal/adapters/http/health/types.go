package health

import "time"

// Status values follow the draft health-check response format for HTTP APIs.
type Status string

const (
	StatusPass Status = "pass"
	StatusFail Status = "fail"
	StatusWarn Status = "warn"
)

const (
	ComponentDatastore = "datastore"
	ComponentSystem    = "system"
	ComponentDefault   = "component"
)

type LivenessResponse struct {
	Status    Status    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version,omitempty"`
	ReleaseId string    `json:"releaseId,omitempty"`
}

type ReadinessResponse struct {
	Status    Status                   `json:"status"`
	Version   string                   `json:"version"`
	ReleaseId string                   `json:"releaseId,omitempty"`
	Notes     []string                 `json:"notes,omitempty"`
	Checks    map[string][]CheckDetail `json:"checks,omitempty"`
}

type CheckDetail struct {
	ComponentId   string    `json:"componentId,omitempty"`
	ComponentType string    `json:"componentType,omitempty"`
	ObservedValue float64   `json:"observedValue"`
	ObservedUnit  string    `json:"observedUnit"`
	Status        Status    `json:"status"`
	Time          time.Time `json:"time"`
	Output        string    `json:"output,omitempty"`
}
