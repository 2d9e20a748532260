package models

// Profile describes the person the portfolio is about
type Profile struct {
	Name           string            `json:"name"`
	Headline       string            `json:"headline,omitempty"`
	Bio            string            `json:"bio,omitempty"`
	AvatarURL      string            `json:"avatar_url,omitempty"`
	Location       string            `json:"location,omitempty"`
	ResumeURL      string            `json:"resume_url,omitempty"`
	Social         map[string]string `json:"social,omitempty"`
	Skills         []string          `json:"skills,omitempty"`
	Experiences    []Experience      `json:"experiences,omitempty"`
	Educations     []Education       `json:"educations,omitempty"`
	Certifications []Certification   `json:"certifications,omitempty"`
	Publications   []Publication     `json:"publications,omitempty"`
}

// Experience is one job entry
type Experience struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	From        string `json:"from"`
	To          string `json:"to"`
	CompanyLink string `json:"companyLink,omitempty"`
}

// Education is one school entry
type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree,omitempty"`
	From        string `json:"from"`
	To          string `json:"to"`
}

// Certification is one certificate entry
type Certification struct {
	Name string `json:"name"`
	Body string `json:"body,omitempty"`
	Year string `json:"year,omitempty"`
	Link string `json:"link,omitempty"`
}

// Publication is one paper or article
type Publication struct {
	Title          string `json:"title"`
	ConferenceName string `json:"conferenceName,omitempty"`
	JournalName    string `json:"journalName,omitempty"`
	Authors        string `json:"authors,omitempty"`
	Link           string `json:"link,omitempty"`
	Description    string `json:"description,omitempty"`
}

// Venue returns the conference or journal the publication appeared in
func (p Publication) Venue() string {
	if p.ConferenceName != "" {
		return p.ConferenceName
	}
	return p.JournalName
}
