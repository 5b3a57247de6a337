package types

// DefaultUserID is attached to uploads that carry no user_id. There is no
// authentication; the caller-supplied string is trusted as-is.
const DefaultUserID = "default_user"

// PaperMetadata is the structured record the AI derives from paper text.
// All six fields must be present in the model response; PaperID falls back
// to a generated token when the model finds no DOI/arXiv identifier.
type PaperMetadata struct {
	Title    string   `json:"title"`
	Authors  []string `json:"authors"`
	Abstract string   `json:"abstract"`
	Tags     []string `json:"tags"`
	FileURL  string   `json:"file_url"`
	PaperID  string   `json:"paper_id"`
}

// Paper is the persisted record for one ingested document.
type Paper struct {
	ID       string   `json:"id" bson:"_id,omitempty"`
	UserID   string   `json:"user_id" bson:"user_id"`
	Title    string   `json:"title" bson:"title"`
	Authors  []string `json:"authors" bson:"authors"`
	Abstract string   `json:"abstract" bson:"abstract"`
	Tags     []string `json:"tags" bson:"tags"`
	FileURL  string   `json:"file_url" bson:"file_url"`
	// PaperID is the external identifier extracted by the model (DOI,
	// arXiv id or a generated token). Lookups always go by ID, never by
	// this field.
	PaperID  string `json:"paper_id" bson:"paper_id"`
	FilePath string `json:"file_path" bson:"file_path"`
	// ExtractedText caches the PDF text from ingestion time so chat does
	// not have to re-parse the blob on every call. Not exposed over HTTP.
	ExtractedText string `json:"-" bson:"extracted_text"`
	CreatedAt     int64  `json:"created_at" bson:"created_at"`
}

// ChatExchange is a single question/answer turn about a stored paper.
// Exchanges are not persisted and carry no history.
type ChatExchange struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	PaperTitle string `json:"paper_title"`
}
