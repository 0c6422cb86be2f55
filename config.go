package main

import "os"

// Config holds all environment variables for the CMS backend. It is built
// once at startup and passed down by injection; request handlers never read
// the environment themselves.
type Config struct {
	DatabaseURL  string // MongoDB connection string
	DatabaseName string // MongoDB database name
	AdminToken   string // Shared secret for mutating endpoints; empty disables them
	Port         string // HTTP listen port (default: 8000)

	SMTPHost       string // Mail relay host; empty means notifications are off
	SMTPPort       string // Mail relay port (default: 587)
	SMTPUser       string
	SMTPPass       string
	ContactToEmail string // Contact notification recipient; falls back to SMTPUser
}

// LoadConfig loads environment variables into a Config struct and applies
// defaults. Nothing here is hard-required: a missing ADMIN_TOKEN makes
// mutating endpoints fail closed and a missing SMTP_HOST disables mail, but
// the process still starts.
func LoadConfig() *Config {
	cfg := &Config{
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		DatabaseName:   os.Getenv("DATABASE_NAME"),
		AdminToken:     os.Getenv("ADMIN_TOKEN"),
		Port:           os.Getenv("PORT"),
		SMTPHost:       os.Getenv("SMTP_HOST"),
		SMTPPort:       os.Getenv("SMTP_PORT"),
		SMTPUser:       os.Getenv("SMTP_USER"),
		SMTPPass:       os.Getenv("SMTP_PASS"),
		ContactToEmail: os.Getenv("CONTACT_TO_EMAIL"),
	}

	if cfg.Port == "" {
		cfg.Port = "8000"
	}
	if cfg.SMTPPort == "" {
		cfg.SMTPPort = "587"
	}
	if cfg.ContactToEmail == "" {
		cfg.ContactToEmail = cfg.SMTPUser
	}

	return cfg
}
