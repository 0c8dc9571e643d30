package processing

// Response shapes for the remote processing API. The backend owns the exact
// schema; these are the fields this service consumes, decoded at the boundary.

type UploadedFile struct {
	URL string `json:"url"`
}

type uploadResponse struct {
	File *UploadedFile `json:"file"`
}

type RemoteFile struct {
	Name         string `json:"name"`
	Size         int64  `json:"size"`
	LastModified string `json:"last_modified"`
	URL          string `json:"url"`
}

type listFilesResponse struct {
	Files []RemoteFile `json:"files"`
}

type ParsedPage struct {
	Page   int    `json:"page"`
	Text   string `json:"text"`
	Md     string `json:"md"`
	Status string `json:"status"`
}

type JobMetadata struct {
	CreditsUsed float64 `json:"credits_used"`
	JobPages    int     `json:"job_pages"`
	IsCacheHit  bool    `json:"job_is_cache_hit"`
}

// ParseResult carries the parse output. The page payload is much richer than
// this; only the fields we surface are decoded.
type ParseResult struct {
	Pages       []ParsedPage `json:"pages"`
	JobMetadata JobMetadata  `json:"job_metadata"`
	JobID       string       `json:"job_id"`
	FilePath    string       `json:"file_path"`
}

type Theme struct {
	Theme     string `json:"theme"`
	Relevance string `json:"relevance"`
}

type PaperAnalysis struct {
	Summary          string   `json:"summary"`
	Methodology      string   `json:"methodology"`
	KeyFindings      []string `json:"key_findings"`
	RelevanceToTopic string   `json:"relevance_to_topic"`
	Themes           []Theme  `json:"themes"`
}

type Extraction struct {
	RawText        string  `json:"raw_text"`
	Meaning        string  `json:"meaning"`
	RelevanceScore float64 `json:"relevance_score"`
}

type ExtractResult struct {
	Extractions []Extraction   `json:"extractions"`
	Analysis    *PaperAnalysis `json:"analysis"`
}

type extractResponse struct {
	Result *ExtractResult `json:"result"`
}

type extractRequest struct {
	FileName   string `json:"file_name"`
	EssayTopic string `json:"essay_topic"`
}

type EvidenceRecord struct {
	DocumentName          string  `json:"document_name"`
	FileName              string  `json:"file_name"`
	EssayTopic            string  `json:"essay_topic"`
	RawText               string  `json:"raw_text"`
	Category              string  `json:"category"`
	Reasoning             string  `json:"reasoning"`
	Strength              string  `json:"strength"`
	StrengthJustification string  `json:"strength_justification"`
	RelevanceScore        float64 `json:"relevance_score"`
}

type EssayGenerationRequest struct {
	Context          string `json:"context"`
	Topic            string `json:"topic"`
	WordCount        int    `json:"word_count"`
	IncludeCitations bool   `json:"include_citations,omitempty"`
}

type EssaySection struct {
	Content string `json:"content"`
	Purpose string `json:"purpose"`
}

type Paragraph struct {
	ParagraphNumber int    `json:"paragraph_number"`
	Content         string `json:"content"`
	Purpose         string `json:"purpose"`
}

type EssayBody struct {
	Introduction   EssaySection `json:"introduction"`
	BodyParagraphs []Paragraph  `json:"body_paragraphs"`
	Conclusion     EssaySection `json:"conclusion"`
}

type EssayStructure struct {
	EssayPlanning  string    `json:"essay_planning"`
	EssayStructure EssayBody `json:"essay_structure"`
}

// Chat session lifecycle.

type Assistant struct {
	AssistantID string `json:"assistant_id"`
}

type createThreadRequest struct {
	UserID string `json:"user_id"`
}

type ChatMessage struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp,omitempty"`
}

type Thread struct {
	ThreadID string        `json:"thread_id"`
	Messages []ChatMessage `json:"messages"`
}

type ChatRequest struct {
	UserID   string `json:"user_id"`
	ThreadID string `json:"thread_id,omitempty"`
	Message  string `json:"message"`
}

type ChatResponse struct {
	Response string `json:"response"`
	ThreadID string `json:"thread_id,omitempty"`
}
