package models

// Categories are the recommended category values offered by the submit form.
// The data layer does not enforce them.
var Categories = []string{
	"education",
	"technology",
	"entertainment",
	"sports",
	"business",
	"lifestyle",
	"other",
}

// Countries are the country values offered by the submit form
var Countries = []string{
	DefaultCountry,
	"United States",
	"United Kingdom",
	"India",
	"Pakistan",
	"Canada",
	"Australia",
	"Germany",
	"France",
	"Nigeria",
	"South Africa",
	"Brazil",
	"Mexico",
	"Japan",
	"China",
	"Other",
}
