package response

type CredentialResponse struct {
	Kind  string `json:"kind"`
	Value string `json:"value"`
}
