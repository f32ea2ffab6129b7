package config

// MailConfig covers both upstream providers: a single API-key HTTP API and a
// service/template/public/private key quadruple. Whichever relay endpoint is
// hit uses its own credential set.
type MailConfig struct {
	APIKey             string `yaml:"api_key"`
	ServiceID          string `yaml:"service_id"`
	TemplateID         string `yaml:"template_id"`
	PublicKey          string `yaml:"public_key"`
	PrivateKey         string `yaml:"private_key"`
	AdminEmail         string `yaml:"admin_email"`
	FromAddress        string `yaml:"from_address"`
	APIBaseURL         string `yaml:"api_base_url"`
	TemplateAPIBaseURL string `yaml:"template_api_base_url"`
}

func loadMailConfig() *MailConfig {
	return &MailConfig{
		APIKey:             getEnv("MAIL_API_KEY", ""),
		ServiceID:          getEnv("MAIL_SERVICE_ID", ""),
		TemplateID:         getEnv("MAIL_TEMPLATE_ID", ""),
		PublicKey:          getEnv("MAIL_PUBLIC_KEY", ""),
		PrivateKey:         getEnv("MAIL_PRIVATE_KEY", ""),
		AdminEmail:         getEnv("MAIL_ADMIN_EMAIL", ""),
		FromAddress:        getEnv("MAIL_FROM_ADDRESS", "Courtside <bookings@courtside.local>"),
		APIBaseURL:         getEnv("MAIL_API_BASE_URL", "https://api.resend.com"),
		TemplateAPIBaseURL: getEnv("MAIL_TEMPLATE_API_BASE_URL", "https://api.emailjs.com"),
	}
}
