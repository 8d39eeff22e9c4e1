package dto

type CSVFile struct {
	FileName string
	Data     []byte
	Rows     int
}

type ArchiveResponse struct {
	Feed     string `json:"feed"`
	FileName string `json:"file_name"`
	Rows     int    `json:"rows"`
	URL      string `json:"url"`
}
