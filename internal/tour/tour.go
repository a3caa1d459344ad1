package tour

// Tour represents one guided-tour entry from the listing page.
//
// All fields are string-valued; an empty string means the field was not
// present in the source document. Only ID and Title are guaranteed for
// extracted records, everything else depends on which annotation and detail
// blocks the listing renders for the entry.
type Tour struct {
	ID                   string `json:"id"`
	Title                string `json:"title"`
	BeginDate            string `json:"begin_date,omitempty"`
	EndDate              string `json:"end_date,omitempty"`
	TourType             string `json:"tour_type,omitempty"`
	URL                  string `json:"url,omitempty"`
	Leader               string `json:"leader,omitempty"`
	LeaderFull           string `json:"leader_full,omitempty"`
	RegistrationStatus   string `json:"registration_status,omitempty"`
	RegistrationText     string `json:"registration_text,omitempty"`
	Location             string `json:"location,omitempty"`
	Requirements         string `json:"requirements,omitempty"`
	MaxParticipants      string `json:"max_participants,omitempty"`
	MeetingPoint         string `json:"meeting_point,omitempty"`
	RegistrationDeadline string `json:"registration_deadline,omitempty"`
	CourseFee            string `json:"course_fee,omitempty"`
	Equipment            string `json:"equipment,omitempty"`
	PreMeeting           string `json:"pre_meeting,omitempty"`
	DescriptionFull      string `json:"description_full,omitempty"`
	DescriptionHTML      string `json:"description_html,omitempty"`
}

// fieldNames lists every diffable field in sorted order. DescriptionHTML is
// deliberately missing: the raw detail markup is too noisy to diff.
var fieldNames = []string{
	"begin_date",
	"course_fee",
	"description_full",
	"end_date",
	"equipment",
	"id",
	"leader",
	"leader_full",
	"location",
	"max_participants",
	"meeting_point",
	"pre_meeting",
	"registration_deadline",
	"registration_status",
	"registration_text",
	"requirements",
	"title",
	"tour_type",
	"url",
}

// field returns the value stored under a diffable field name. The second
// return reports presence (non-empty value).
func (t Tour) field(name string) (string, bool) {
	var v string
	switch name {
	case "id":
		v = t.ID
	case "title":
		v = t.Title
	case "begin_date":
		v = t.BeginDate
	case "end_date":
		v = t.EndDate
	case "tour_type":
		v = t.TourType
	case "url":
		v = t.URL
	case "leader":
		v = t.Leader
	case "leader_full":
		v = t.LeaderFull
	case "registration_status":
		v = t.RegistrationStatus
	case "registration_text":
		v = t.RegistrationText
	case "location":
		v = t.Location
	case "requirements":
		v = t.Requirements
	case "max_participants":
		v = t.MaxParticipants
	case "meeting_point":
		v = t.MeetingPoint
	case "registration_deadline":
		v = t.RegistrationDeadline
	case "course_fee":
		v = t.CourseFee
	case "equipment":
		v = t.Equipment
	case "pre_meeting":
		v = t.PreMeeting
	case "description_full":
		v = t.DescriptionFull
	}
	return v, v != ""
}

// DateRange formats the begin and end date for display, e.g. "05.02.26–10.02.26".
func (t Tour) DateRange() string {
	return t.BeginDate + "–" + t.EndDate
}
