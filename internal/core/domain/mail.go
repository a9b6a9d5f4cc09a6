package domain

// MailMessage is an outbound plain-text email.
type MailMessage struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// StoredAsset describes a file held by the external media host.
type StoredAsset struct {
	ObjectName string
	URL        string
}
