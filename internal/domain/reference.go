package domain

type Group struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Specialization   string `json:"specialization"`
	NumberOfStudents int    `json:"numberOfStudents"`
	Curator          string `json:"curator"`
}

type Teacher struct {
	ID             int64  `json:"id"`
	FullName       string `json:"fullName"`
	Specialization string `json:"specialization"`
	Experience     string `json:"experience"`
	ContactInfo    string `json:"contactInfo"`
}

type Room struct {
	ID        int64  `json:"id"`
	Number    string `json:"number"`
	Type      string `json:"type"`
	Capacity  int    `json:"capacity"`
	Equipment string `json:"equipment"`
}

type Subject struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	HoursPerWeek int    `json:"hoursPerWeek"`
	Type         string `json:"type"`
	Department   string `json:"department"`
}
