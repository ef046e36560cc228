package dto

type ArchivedFile struct {
	Format   string `json:"format"`
	FileName string `json:"file_name"`
	URL      string `json:"url"`
}

type ArchiveResponse struct {
	Files        []ArchivedFile `json:"files"`
	GeneratedAt  string         `json:"generated_at"`
	BookingCount int            `json:"booking_count"`
}
