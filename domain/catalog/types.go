package catalog

// Catalog is the full set of mock business data served by the site.
type Catalog struct {
	Features          []Feature        `yaml:"features"`
	Plans             []Plan           `yaml:"plans"`
	PlanFeatureLabels []FeatureLabel   `yaml:"plan_feature_labels"`
	Testimonials      []Testimonial    `yaml:"testimonials"`
	Clients           []string         `yaml:"clients"`
	TLDs              []TLD            `yaml:"tlds"`
	DomainKeywords    []string         `yaml:"domain_keywords"`
	DomainFeatures    []string         `yaml:"domain_features"`
	CompanyStats      []CompanyStat    `yaml:"company_stats"`
	Values            []Feature        `yaml:"values"`
	Team              []TeamMember     `yaml:"team"`
	Milestones        []Milestone      `yaml:"milestones"`
	ContactChannels   []ContactChannel `yaml:"contact_channels"`
	SupportTopics     []SupportTopic   `yaml:"support_topics"`
	DashboardStats    []DashboardStat  `yaml:"dashboard_stats"`
	RecentServices    []RecentService  `yaml:"recent_services"`
	SystemAlerts      []SystemAlert    `yaml:"system_alerts"`
	QuickActions      []QuickAction    `yaml:"quick_actions"`
	Services          []Service        `yaml:"services"`
	Invoices          []Invoice        `yaml:"invoices"`
	Tickets           []Ticket         `yaml:"tickets"`
	Profile           Profile          `yaml:"profile"`
	Notifications     []Toggle         `yaml:"notifications"`
	Security          SecuritySettings `yaml:"security"`
}

// Feature is a headline selling point.
type Feature struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Plan is a hosting package.
type Plan struct {
	Name         string            `yaml:"name"`
	Description  string            `yaml:"description"`
	MonthlyPrice float64           `yaml:"monthly_price"`
	YearlyPrice  float64           `yaml:"yearly_price"`
	Popular      bool              `yaml:"popular"`
	Highlights   []string          `yaml:"highlights"`
	Features     map[string]string `yaml:"features"`
}

// FeatureLabel names one row of the plan comparison table.
type FeatureLabel struct {
	Key   string `yaml:"key"`
	Label string `yaml:"label"`
}

// Testimonial is a customer quote.
type Testimonial struct {
	Name    string `yaml:"name"`
	Company string `yaml:"company"`
	Content string `yaml:"content"`
	Rating  int    `yaml:"rating"`
}

// TLD is a registrable top-level domain.
type TLD struct {
	Extension string  `yaml:"extension"`
	Price     float64 `yaml:"price"`
	Popular   bool    `yaml:"popular"`
	Default   bool    `yaml:"default"`
}

// Name returns the extension without its leading dot.
func (t TLD) Name() string {
	if len(t.Extension) > 0 && t.Extension[0] == '.' {
		return t.Extension[1:]
	}
	return t.Extension
}

// DomainResult is the availability of one candidate domain.
type DomainResult struct {
	Domain    string
	Available bool
	Price     float64
	Popular   bool
	Features  []string
}

// CompanyStat is a marketing figure on the about page.
type CompanyStat struct {
	Number string `yaml:"number"`
	Label  string `yaml:"label"`
}

// TeamMember is a leadership profile.
type TeamMember struct {
	Name  string `yaml:"name"`
	Role  string `yaml:"role"`
	Image string `yaml:"image"`
	Bio   string `yaml:"bio"`
}

// Milestone is a company history entry.
type Milestone struct {
	Year        string `yaml:"year"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// ContactChannel is a way to reach the company.
type ContactChannel struct {
	Title       string   `yaml:"title"`
	Details     []string `yaml:"details"`
	Description string   `yaml:"description"`
}

// SupportTopic describes a contact category and its typical response time.
type SupportTopic struct {
	Title        string `yaml:"title"`
	Description  string `yaml:"description"`
	ResponseTime string `yaml:"response_time"`
}

// DashboardStat is a summary tile on the dashboard overview.
type DashboardStat struct {
	Title    string `yaml:"title"`
	Value    string `yaml:"value"`
	Change   string `yaml:"change"`
	Positive bool   `yaml:"positive"`
}

// RecentService is a service row on the dashboard overview.
type RecentService struct {
	Name            string `yaml:"name"`
	Domain          string `yaml:"domain"`
	Status          string `yaml:"status"`
	Uptime          string `yaml:"uptime"`
	UpdatedHoursAgo int    `yaml:"updated_hours_ago"`
}

// SystemAlert is a notice on the dashboard overview.
type SystemAlert struct {
	Type     string `yaml:"type"`
	Message  string `yaml:"message"`
	HoursAgo int    `yaml:"hours_ago"`
}

// QuickAction is a shortcut button on the dashboard overview.
type QuickAction struct {
	Slug        string `yaml:"slug"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// Service is a product the customer has purchased.
type Service struct {
	ID         int     `yaml:"id"`
	Name       string  `yaml:"name"`
	Type       string  `yaml:"type"`
	Domain     string  `yaml:"domain"`
	StartDate  string  `yaml:"start_date"`
	EndDate    string  `yaml:"end_date"`
	Price      float64 `yaml:"price"`
	Status     string  `yaml:"status"`
	Uptime     string  `yaml:"uptime"`
	LastBackup string  `yaml:"last_backup"`
	SSLStatus  string  `yaml:"ssl_status"`
	DiskUsage  string  `yaml:"disk_usage"`
	Bandwidth  string  `yaml:"bandwidth"`
}

// Invoice is a bill for one or more services.
type Invoice struct {
	ID            string        `yaml:"id"`
	Service       string        `yaml:"service"`
	Date          string        `yaml:"date"`
	DueDate       string        `yaml:"due_date"`
	Amount        float64       `yaml:"amount"`
	Status        string        `yaml:"status"`
	PaymentMethod string        `yaml:"payment_method"`
	PaidDate      string        `yaml:"paid_date"`
	Items         []InvoiceItem `yaml:"items"`
	Notes         string        `yaml:"notes"`
}

// InvoiceItem is one billed line.
type InvoiceItem struct {
	Description string  `yaml:"description"`
	Quantity    int     `yaml:"quantity"`
	UnitPrice   float64 `yaml:"unit_price"`
}

// Total returns quantity times unit price.
func (i InvoiceItem) Total() float64 {
	return float64(i.Quantity) * i.UnitPrice
}

// Ticket is a support request.
type Ticket struct {
	ID         string `yaml:"id"`
	Subject    string `yaml:"subject"`
	Department string `yaml:"department"`
	Priority   string `yaml:"priority"`
	Status     string `yaml:"status"`
	Message    string `yaml:"message"`
	Attachment string `yaml:"attachment"`
	CreatedAt  string `yaml:"created_at"`
	LastUpdate string `yaml:"last_update"`
}

// Profile is the customer's account details.
type Profile struct {
	FirstName string `yaml:"first_name" form:"firstName" validate:"required,max=60"`
	LastName  string `yaml:"last_name" form:"lastName" validate:"required,max=60"`
	Email     string `yaml:"email" form:"email" validate:"required,email"`
	Phone     string `yaml:"phone" form:"phone" validate:"max=40"`
	Company   string `yaml:"company" form:"company" validate:"max=120"`
	Country   string `yaml:"country" form:"country" validate:"max=80"`
	Timezone  string `yaml:"timezone" form:"timezone" validate:"max=80"`
	Language  string `yaml:"language" form:"language" validate:"max=40"`
}

// Toggle is a named on/off notification preference.
type Toggle struct {
	Key         string `yaml:"key"`
	Label       string `yaml:"label"`
	Description string `yaml:"description"`
	Enabled     bool   `yaml:"enabled"`
}

// SecuritySettings holds account security options.
type SecuritySettings struct {
	TwoFactorAuth      bool `yaml:"two_factor_auth" form:"twoFactorAuth"`
	LoginNotifications bool `yaml:"login_notifications" form:"loginNotifications"`
	SessionTimeout     int  `yaml:"session_timeout_minutes" form:"sessionTimeout"`
	PasswordExpiry     int  `yaml:"password_expiry_days" form:"passwordExpiry"`
}
