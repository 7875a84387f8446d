package contract

const (
	HealthHealthy     = "healthy"
	HealthDegraded    = "degraded"
	HealthUnavailable = "unavailable"
)

// AgentHealth is the body of GET /agent/health.
type AgentHealth struct {
	Status       string `json:"status"`
	AgentType    string `json:"agent_type"`
	LLMAvailable bool   `json:"llm_available"`
	Model        string `json:"model,omitempty"`
	Note         string `json:"note,omitempty"`
}

// ChatHealth is the body of GET /chat/health.
type ChatHealth struct {
	Status       string `json:"status"`
	LLMAvailable bool   `json:"llm_available"`
	Model        string `json:"model,omitempty"`
}
