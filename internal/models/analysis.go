package models

type Status string

const (
	StatusComplete          Status = "complete"
	StatusMissing           Status = "missing"
	StatusExtra             Status = "extra"
	StatusMixed             Status = "mixed"
	StatusDuplicates        Status = "duplicates"
	StatusDuplicatesOnly    Status = "duplicates_only"
	StatusMissingDuplicates Status = "missing_duplicates"
	StatusError             Status = "error"
	StatusUnknown           Status = "unknown"
)

var StatusList = [...]Status{
	StatusComplete,
	StatusMissing,
	StatusExtra,
	StatusMixed,
	StatusDuplicates,
	StatusDuplicatesOnly,
	StatusMissingDuplicates,
	StatusError,
	StatusUnknown,
}

// Normalize maps any value outside the known set to StatusUnknown.
func (s Status) Normalize() Status {
	for _, known := range StatusList {
		if s == known {
			return s
		}
	}
	return StatusUnknown
}

type Detection struct {
	ClassID    int       `json:"class_id"`
	ClassName  string    `json:"class_name"`
	Confidence float64   `json:"confidence"`
	BBox       []float64 `json:"bbox,omitempty"`
}

type AnalysisConfig struct {
	ConfidenceThreshold float64 `json:"confidence_threshold"`
	IoUThreshold        float64 `json:"iou_threshold"`
	AnnotatedImagePath  string  `json:"annotated_image_path,omitempty"`
	OutputDirectory     string  `json:"output_directory,omitempty"`
	TotalAnnotated      int     `json:"total_annotated_images,omitempty"`
}

type AnalysisResult struct {
	Filename           string          `json:"filename,omitempty"`
	Status             Status          `json:"status"`
	TotalDetections    int             `json:"total_detections"`
	ExpectedCount      *int            `json:"expected_count,omitempty"`
	MissingTools       []string        `json:"missing_tools,omitempty"`
	ExtraTools         []string        `json:"extra_tools,omitempty"`
	Detections         []Detection     `json:"detections,omitempty"`
	Message            string          `json:"message,omitempty"`
	AnnotatedImagePath string          `json:"annotated_image_path,omitempty"`
	Config             *AnalysisConfig `json:"config,omitempty"`
}

type Summary struct {
	Complete          int `json:"complete"`
	Missing           int `json:"missing"`
	Extra             int `json:"extra"`
	Mixed             int `json:"mixed"`
	Duplicates        int `json:"duplicates"`
	DuplicatesOnly    int `json:"duplicates_only"`
	MissingDuplicates int `json:"missing_duplicates"`
	Errors            int `json:"error"`
}

type BatchResult struct {
	Status          string           `json:"status,omitempty"`
	TotalImages     int              `json:"total_images"`
	ProcessedImages int              `json:"processed_images"`
	TotalDetections int              `json:"total_detections"`
	Results         []AnalysisResult `json:"results"`
	Summary         *Summary         `json:"summary,omitempty"`
	ProcessingTime  float64          `json:"processing_time"`
	Message         string           `json:"message,omitempty"`
	Config          *AnalysisConfig  `json:"config,omitempty"`
}
