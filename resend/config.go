package resend

// Config holds Resend transport configuration for direct construction,
// when the courier transport registry is not used.
type Config struct {
	APIKey     string `yaml:"apiKey"`
	SenderName string `yaml:"senderName"`
}
