package store

// Collection name constants. Feature modules must address collections by these
// exact names since the stored data is shared between them.
const (
	StudentProfiles        = "studentProfiles"
	CompanyProfiles        = "companyProfiles"
	Internships            = "Internships"
	InternshipApplications = "InternshipApplications"
	InternshipEvaluations  = "InternshipEvaluations"
	AssessmentResults      = "AssessmentResults"
	Workshops              = "workshops"
	Notifications          = "notifications"
	Emails                 = "emails"
	SCADAppointments       = "scadAppointments"
	StudentAppointments    = "studentAppointments"
	CompanyViews           = "companyViews"
)

// CollectionSpec declares one named collection: the document field acting as
// primary key and any secondary indexes maintained over the raw document.
type CollectionSpec struct {
	Name      string
	KeyField  string
	Secondary []string
}

// Collections is the full set of collections declared on open. The key field
// is unique within its collection; secondary indexes only speed up
// FindByField, they carry no uniqueness.
var Collections = []CollectionSpec{
	{Name: StudentProfiles, KeyField: "email"},
	{Name: CompanyProfiles, KeyField: "email"},
	{Name: Internships, KeyField: "id"},
	{Name: InternshipApplications, KeyField: "id"},
	{Name: InternshipEvaluations, KeyField: "internshipId"},
	{Name: AssessmentResults, KeyField: "email"},
	{Name: Workshops, KeyField: "id"},
	{Name: Notifications, KeyField: "id"},
	{Name: Emails, KeyField: "id", Secondary: []string{"recipient"}},
	{Name: SCADAppointments, KeyField: "id"},
	{Name: StudentAppointments, KeyField: "id"},
	{Name: CompanyViews, KeyField: "email"},
}

func specFor(name string) (CollectionSpec, bool) {
	for _, c := range Collections {
		if c.Name == name {
			return c, true
		}
	}
	return CollectionSpec{}, false
}
