package activedirectory

var (
	userObjectClasses     = []string{"person", "organizationalPerson", "user", "inetOrgPerson"}
	ouObjectClasses       = []string{"organizationalUnit"}
	computerObjectClasses = []string{"computer"}
)

// Classifier assigns records to the categories a conversion has enabled.
// Checks run user, organizationalUnit, computer; the first enabled match wins.
type Classifier struct {
	enabled map[Category]bool
}

func NewClassifier(categories ...Category) *Classifier {
	enabled := make(map[Category]bool, len(categories))
	for _, category := range categories {
		enabled[category] = true
	}
	return &Classifier{enabled: enabled}
}

func (c *Classifier) Classify(record *Record) Category {
	if record == nil {
		return CategoryOther
	}

	switch {
	case c.enabled[CategoryUser] && IsUser(record):
		return CategoryUser
	case c.enabled[CategoryOrganizationalUnit] && IsOrganizationalUnit(record):
		return CategoryOrganizationalUnit
	case c.enabled[CategoryComputer] && IsComputer(record):
		return CategoryComputer
	default:
		return CategoryOther
	}
}

func IsUser(record *Record) bool {
	return record.HasObjectClass(userObjectClasses...)
}

func IsOrganizationalUnit(record *Record) bool {
	return record.HasObjectClass(ouObjectClasses...)
}

func IsComputer(record *Record) bool {
	return record.HasObjectClass(computerObjectClasses...)
}
