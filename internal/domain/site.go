package domain

import "time"

type ServiceOffering struct {
	Icon        string
	Title       string
	Description string
}

type Stat struct {
	Number string
	Label  string
}

// ContactChannels are the organization's published contact details.
type ContactChannels struct {
	Email   string
	Phone   string
	Address string
}

type SocialLinks struct {
	Facebook  string
	Instagram string
	LinkedIn  string
	Twitter   string
}

// SiteContent is the marketing copy rendered into the homepage.
type SiteContent struct {
	Title             string
	CompanyName       string
	HeroTitle         string
	HeroDescription   string
	AboutDescription  string
	AboutMission      string
	AboutImage        string
	FooterDescription string
	FormAction        string
	CurrentYear       int
	Services          []ServiceOffering
	Stats             []Stat
	Contact           ContactChannels
	Social            SocialLinks
}

// NotFoundPage is rendered for unmatched routes.
type NotFoundPage struct {
	Title       string
	CompanyName string
	CurrentYear int
}

type SiteUsecase interface {
	Home() SiteContent
	NotFound() NotFoundPage
}

type HealthStatus struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Uptime    float64   `json:"uptime"`
}

type HealthUsecase interface {
	Check() HealthStatus
}
