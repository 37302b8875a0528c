package models

// Default GST split applied to every freshly created row.
const (
	DefaultCGSTPercent = 9.0
	DefaultSGSTPercent = 9.0
)

// DefaultBusinessDetails returns the fallback business record used when
// nothing has been persisted. Callers get a fresh copy; the phones slice
// is never shared.
func DefaultBusinessDetails() BusinessDetails {
	return BusinessDetails{
		Name:   "SINGHA ROY ENTERPRISE",
		Phones: []string{"9903746426", "7001761384"},
		Email:  "debarishisingharoy@gmail.com",
		GSTNo:  "19ALAPR8029B1Z5",
		Address: Address{
			Line1: "Singha Roy Bhaban, Saheb Kachari Para",
			Line2: "Balurghat, District - South Dinajpur",
			City:  "Balurghat",
			Pin:   "733101",
			State: "West Bengal",
		},
	}
}

// IndianStates is the fixed state enumeration offered for address entry.
var IndianStates = []string{
	"Andhra Pradesh",
	"Arunachal Pradesh",
	"Assam",
	"Bihar",
	"Chhattisgarh",
	"Goa",
	"Gujarat",
	"Haryana",
	"Himachal Pradesh",
	"Jharkhand",
	"Karnataka",
	"Kerala",
	"Madhya Pradesh",
	"Maharashtra",
	"Manipur",
	"Meghalaya",
	"Mizoram",
	"Nagaland",
	"Odisha",
	"Punjab",
	"Rajasthan",
	"Sikkim",
	"Tamil Nadu",
	"Telangana",
	"Tripura",
	"Uttar Pradesh",
	"Uttarakhand",
	"West Bengal",
	"Delhi",
	"Jammu and Kashmir",
	"Ladakh",
	"Chandigarh",
	"Puducherry",
	"Dadra and Nagar Haveli and Daman and Diu",
	"Lakshadweep",
	"Andaman and Nicobar Islands",
}
