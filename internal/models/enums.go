package models

type IncidentType string

const (
	IncidentFlood            IncidentType = "Flood"
	IncidentFire             IncidentType = "Fire"
	IncidentBuildingCollapse IncidentType = "Building Collapse"
	IncidentRoadAccident     IncidentType = "Road Accident"
	IncidentOther            IncidentType = "Other"
)

func (t IncidentType) Valid() bool {
	switch t {
	case IncidentFlood, IncidentFire, IncidentBuildingCollapse, IncidentRoadAccident, IncidentOther:
		return true
	}
	return false
}

type IncidentStatus string

const (
	IncidentReported   IncidentStatus = "reported"
	IncidentVerified   IncidentStatus = "verified"
	IncidentInProgress IncidentStatus = "in_progress"
	IncidentResolved   IncidentStatus = "resolved"
)

func (s IncidentStatus) Valid() bool {
	switch s {
	case IncidentReported, IncidentVerified, IncidentInProgress, IncidentResolved:
		return true
	}
	return false
}

type MissingPersonStatus string

const (
	MissingPersonMissing       MissingPersonStatus = "missing"
	MissingPersonFound         MissingPersonStatus = "found"
	MissingPersonInvestigating MissingPersonStatus = "investigating"
)

func (s MissingPersonStatus) Valid() bool {
	switch s {
	case MissingPersonMissing, MissingPersonFound, MissingPersonInvestigating:
		return true
	}
	return false
}

type PostCategory string

const (
	CategoryFood         PostCategory = "Food"
	CategoryWater        PostCategory = "Water"
	CategoryMedical      PostCategory = "Medical"
	CategoryRescue       PostCategory = "Rescue"
	CategoryVolunteer    PostCategory = "Volunteer"
	CategoryAnnouncement PostCategory = "Announcement"
)

func (c PostCategory) Valid() bool {
	switch c {
	case CategoryFood, CategoryWater, CategoryMedical, CategoryRescue, CategoryVolunteer, CategoryAnnouncement:
		return true
	}
	return false
}

type SOSStatus string

const (
	SOSActive     SOSStatus = "active"
	SOSResponded  SOSStatus = "responded"
	SOSResolved   SOSStatus = "resolved"
	SOSFalseAlarm SOSStatus = "false_alarm"
)

func (s SOSStatus) Valid() bool {
	switch s {
	case SOSActive, SOSResponded, SOSResolved, SOSFalseAlarm:
		return true
	}
	return false
}
