package domain

// Zone is a Cloudflare zone summary.
type Zone struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Status      string   `json:"status"`
	Paused      bool     `json:"paused"`
	NameServers []string `json:"name_servers,omitempty"`
}

// ZoneSetting is a single zone-level setting value.
type ZoneSetting struct {
	ID         string `json:"id"`
	Value      any    `json:"value"`
	Editable   bool   `json:"editable,omitempty"`
	ModifiedOn string `json:"modified_on,omitempty"`
}
