package constvars

const (
	RegexContainAtLeastOneSpecialChar = `[!@#\$%\^&\*\(\)_\+\-=\[\]\{\};':"\\|,\.<>\/\?]`
	RegexContainAtLeastOneUppercase   = `[A-Z]`
	RegexDateISO                      = `^\d{4}-\d{2}-\d{2}$`
	RegexTimeHHMM                     = `^([01]\d|2[0-3]):[0-5]\d$`
	RegexBusinessSlug                 = `^[a-z0-9]+(?:-[a-z0-9]+)*$`
)
