package reports

// Stats son los contadores del dashboard.
type Stats struct {
	TotalPatients   int `json:"totalPatients"`
	TotalVisits     int `json:"totalVisits"`
	UpcomingVisits  int `json:"upcomingVisits"`
	VisitsThisMonth int `json:"visitsThisMonth"`
}

// ExportRow es una fila del export CSV: un paciente con el resumen de sus visitas.
type ExportRow struct {
	Name        string
	DOB         string
	Contact     string
	BloodType   string
	Address     string
	TotalVisits int
	LastVisit   string // fecha de la última visita, vacío si no tiene
}
