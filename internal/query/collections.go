package query

// Remote collections queried by gsread.
const (
	CollectionCompany       = "Company"
	CollectionCompanyPerson = "company_person"
	CollectionTimeline      = "activity_timeline"
)

// Contact lookup fields on company_person.
const (
	FieldPersonGsid      = "Person_ID__gr.Gsid"
	FieldPersonFirstName = "Person_ID__gr.FirstName"
	FieldPersonLastName  = "Person_ID__gr.LastName"
	FieldPersonEmail     = "Person_ID__gr.Email"
)

var (
	// CompanyFields is the select list for a full company lookup.
	CompanyFields = []string{"Gsid", "Name", "Industry", "ModifiedDate"}

	// CompanySummaryFields is the select list for the dashboard's name lookup.
	CompanySummaryFields = []string{"Gsid", "Name", "Industry"}

	// ContactFields is the select list for the contacts listing.
	ContactFields = []string{
		"Gsid",
		FieldPersonGsid,
		FieldPersonFirstName,
		FieldPersonLastName,
		FieldPersonEmail,
		"Role",
		"Title",
		"Active",
	}

	// ContactSummaryFields is the select list for the dashboard's top contacts.
	ContactSummaryFields = []string{
		FieldPersonFirstName,
		FieldPersonLastName,
		FieldPersonEmail,
		"Title",
	}

	// TimelineFields is the select list for timeline activities.
	TimelineFields = []string{
		"Gsid",
		"CreatedDate",
		"Subject",
		"Notes",
		"ActivityDate",
		"contextname",
		"AuthorId",
		"GsCompanyId",
		"GsRelationshipId",
	}
)

// CompanyByID selects a single company by Gsid.
func CompanyByID(gsid string, fields []string) (Query, error) {
	return Select(fields...).
		WhereEq("Gsid", gsid).
		Limit(1).
		Build()
}

// ContactsByCompany selects the active contacts of a company ordered by last
// name. limit is the page size.
func ContactsByCompany(companyGsid string, fields []string, limit int) (Query, error) {
	return Select(fields...).
		WhereEq("Company_ID", companyGsid).
		WhereEq("Active", true).
		OrderBy(FieldPersonLastName, Asc).
		Limit(limit).
		Build()
}

// TimelineByAuthor selects the most recent activities authored by the user
// with the given email.
func TimelineByAuthor(email string, limit int) (Query, error) {
	return Select(TimelineFields...).
		WhereEq("AuthorId__gr.Email", email).
		OrderBy("CreatedDate", Desc).
		Limit(limit).
		Build()
}

// UserListRequest is the body of the users/services/list call used to check
// that a key is valid. It only reads one row.
type UserListRequest struct {
	IncludeTotal bool     `json:"includeTotal"`
	Limit        int      `json:"limit"`
	Page         int      `json:"page"`
	OrderBy      OrderBy  `json:"orderBy"`
	Select       []string `json:"select"`
}

// NewUserListRequest returns the users/services/list request body.
func NewUserListRequest() UserListRequest {
	return UserListRequest{
		IncludeTotal: true,
		Limit:        1,
		Page:         0,
		OrderBy:      OrderBy{{Field: "ModifiedDate", Direction: Desc}},
		Select:       []string{"Name", "Email", "SFDCUserName", "LicenseType", "ModifiedDate"},
	}
}
