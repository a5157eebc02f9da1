package response

type OfflineResponse struct {
	Offline bool `json:"offline"`
}
