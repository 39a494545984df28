package wizard

// Step declares one page of the wizard: its position, the BSON section it
// persists into, and the full field table.
type Step struct {
	// Name matches the remote-operation naming convention
	// (submitPersonalData, savePersonalData, ...).
	Name    string
	Slug    string
	Ordinal int
	// Section is the embedded document the step persists into.
	Section string
	Fields  []Field
}

// Terminal reports whether submitting this step completes the wizard.
func (s Step) Terminal() bool {
	return s.Ordinal == len(Steps)
}

// Steps is the ordered wizard registry. Ordinals are 1-based.
var Steps = []Step{
	{
		Name: "PersonalData", Slug: "personal-data", Ordinal: 1, Section: "personalData",
		Fields: []Field{
			{Name: "firstName", Kind: KindText},
			{Name: "lastName", Kind: KindText},
			{Name: "cpf", Kind: KindText},
			{Name: "sex", Kind: KindText},
			{Name: "maritalStatus", Kind: KindText},
			{Name: "birthDate", Kind: KindDate},
			{Name: "birthCity", Kind: KindText},
			{Name: "birthState", Kind: KindText},
			{Name: "birthCountry", Kind: KindText},
			{Name: "otherNamesConfirmation", Kind: KindTristate},
			{Name: "otherNames", Kind: KindStringList, DetailOf: "otherNamesConfirmation"},
			{Name: "otherNationalityConfirmation", Kind: KindTristate},
			{Name: "otherNationalityCountry", Kind: KindText, DetailOf: "otherNationalityConfirmation"},
			{Name: "usSocialSecurityNumber", Kind: KindText},
			{Name: "usTaxpayerNumber", Kind: KindText},
		},
	},
	{
		Name: "ContactAndAddress", Slug: "contact-and-address", Ordinal: 2, Section: "contactAndAddress",
		Fields: []Field{
			{Name: "address", Kind: KindText},
			{Name: "addressNumber", Kind: KindText},
			{Name: "district", Kind: KindText},
			{Name: "city", Kind: KindText},
			{Name: "state", Kind: KindText},
			{Name: "cep", Kind: KindText},
			{Name: "country", Kind: KindText},
			{Name: "otherPostalAddressConfirmation", Kind: KindTristate},
			{Name: "otherPostalAddress", Kind: KindText, DetailOf: "otherPostalAddressConfirmation"},
			{Name: "cel", Kind: KindText},
			{Name: "tel", Kind: KindText},
			{Name: "fiveYearsOtherTelConfirmation", Kind: KindTristate},
			{Name: "otherTel", Kind: KindStringList, DetailOf: "fiveYearsOtherTelConfirmation"},
			{Name: "email", Kind: KindText},
			{Name: "fiveYearsOtherEmailConfirmation", Kind: KindTristate},
			{Name: "otherEmail", Kind: KindText, DetailOf: "fiveYearsOtherEmailConfirmation"},
			{Name: "socialMedia", Kind: KindStringList},
		},
	},
	{
		Name: "Passport", Slug: "passport", Ordinal: 3, Section: "passport",
		Fields: []Field{
			{Name: "passportNumber", Kind: KindText},
			{Name: "passportIssuingCountry", Kind: KindText},
			{Name: "passportIssuingCity", Kind: KindText},
			{Name: "passportIssuingState", Kind: KindText},
			{Name: "passportIssuingDate", Kind: KindDate},
			{Name: "passportExpireDate", Kind: KindDate},
			{Name: "passportLostConfirmation", Kind: KindTristate},
			{Name: "lostPassports", Kind: KindRecordList, DetailOf: "passportLostConfirmation", Element: []Field{
				{Name: "number", Kind: KindText},
				{Name: "country", Kind: KindText, Required: true},
				{Name: "details", Kind: KindText, Required: true},
			}},
		},
	},
	{
		Name: "AboutTravel", Slug: "about-travel", Ordinal: 4, Section: "aboutTravel",
		Fields: []Field{
			{Name: "travelItineraryConfirmation", Kind: KindTristate},
			{Name: "usaPreviewArriveDate", Kind: KindDate, DetailOf: "travelItineraryConfirmation"},
			{Name: "arriveFlight", Kind: KindText},
			{Name: "arriveCity", Kind: KindText},
			{Name: "usaPreviewReturnDate", Kind: KindDate},
			{Name: "returnFlight", Kind: KindText},
			{Name: "returnCity", Kind: KindText},
			{Name: "estimatedTime", Kind: KindText},
			{Name: "visitLocations", Kind: KindStringList},
			{Name: "usaCity", Kind: KindText},
			{Name: "usaAddress", Kind: KindText},
			{Name: "usaZipCode", Kind: KindText},
			{Name: "payerNameOrCompany", Kind: KindText},
			{Name: "payerTel", Kind: KindText},
			{Name: "payerAddress", Kind: KindText},
			{Name: "payerRelation", Kind: KindText},
			{Name: "payerEmail", Kind: KindText},
		},
	},
	{
		Name: "TravelCompany", Slug: "travel-company", Ordinal: 5, Section: "travelCompany",
		Fields: []Field{
			{Name: "otherPeopleTravelingConfirmation", Kind: KindTristate},
			{Name: "otherPeopleTraveling", Kind: KindRecordList, DetailOf: "otherPeopleTravelingConfirmation", Element: []Field{
				{Name: "name", Kind: KindText, Required: true},
				{Name: "relation", Kind: KindText, Required: true},
			}},
			{Name: "groupMemberConfirmation", Kind: KindTristate},
			{Name: "groupName", Kind: KindText, DetailOf: "groupMemberConfirmation"},
		},
	},
	{
		Name: "PreviousTravel", Slug: "previous-travel", Ordinal: 6, Section: "previousTravel",
		Fields: []Field{
			{Name: "hasBeenOnUSAConfirmation", Kind: KindTristate},
			{Name: "usaLastTravels", Kind: KindRecordList, DetailOf: "hasBeenOnUSAConfirmation", Element: []Field{
				{Name: "arriveDate", Kind: KindDate, Required: true},
				{Name: "estimatedTime", Kind: KindText, Required: true},
			}},
			{Name: "americanLicenseConfirmation", Kind: KindTristate},
			{Name: "americanLicenses", Kind: KindRecordList, DetailOf: "americanLicenseConfirmation", Element: []Field{
				{Name: "licenseNumber", Kind: KindText, Required: true},
				{Name: "state", Kind: KindText, Required: true},
			}},
			{Name: "usaVisaConfirmation", Kind: KindTristate},
			{Name: "visaIssuingDate", Kind: KindDate, DetailOf: "usaVisaConfirmation"},
			{Name: "visaNumber", Kind: KindText, DetailOf: "usaVisaConfirmation"},
			{Name: "lostVisaConfirmation", Kind: KindTristate},
			{Name: "lostVisaDetails", Kind: KindText, DetailOf: "lostVisaConfirmation"},
			{Name: "canceledVisaConfirmation", Kind: KindTristate},
			{Name: "canceledVisaDetails", Kind: KindText, DetailOf: "canceledVisaConfirmation"},
			{Name: "deniedVisaConfirmation", Kind: KindTristate},
			{Name: "deniedVisaDetails", Kind: KindText, DetailOf: "deniedVisaConfirmation"},
			{Name: "immigrationRequestConfirmation", Kind: KindTristate},
			{Name: "immigrationRequestDetails", Kind: KindText, DetailOf: "immigrationRequestConfirmation"},
		},
	},
	{
		Name: "UsaContact", Slug: "usa-contact", Ordinal: 7, Section: "usaContact",
		Fields: []Field{
			{Name: "contactName", Kind: KindText},
			{Name: "contactRelation", Kind: KindText},
			{Name: "contactAddress", Kind: KindText},
			{Name: "contactZipCode", Kind: KindText},
			{Name: "contactCity", Kind: KindText},
			{Name: "contactState", Kind: KindText},
			{Name: "contactTel", Kind: KindText},
			{Name: "contactEmail", Kind: KindText},
		},
	},
	{
		Name: "Family", Slug: "family", Ordinal: 8, Section: "family",
		Fields: []Field{
			{Name: "fatherCompleteName", Kind: KindText},
			{Name: "fatherBirthdate", Kind: KindDate},
			{Name: "fatherLiveInUSAConfirmation", Kind: KindTristate},
			{Name: "fatherUsaSituation", Kind: KindText, DetailOf: "fatherLiveInUSAConfirmation"},
			{Name: "motherCompleteName", Kind: KindText},
			{Name: "motherBirthdate", Kind: KindDate},
			{Name: "motherLiveInUSAConfirmation", Kind: KindTristate},
			{Name: "motherUsaSituation", Kind: KindText, DetailOf: "motherLiveInUSAConfirmation"},
			{Name: "familyLivingInUSAConfirmation", Kind: KindTristate},
			{Name: "familyLivingInUSA", Kind: KindRecordList, DetailOf: "familyLivingInUSAConfirmation", Element: []Field{
				{Name: "name", Kind: KindText, Required: true},
				{Name: "relation", Kind: KindText, Required: true},
				{Name: "situation", Kind: KindText, Required: true},
			}},
			{Name: "partnerCompleteName", Kind: KindText},
			{Name: "partnerBirthdate", Kind: KindDate},
			{Name: "partnerNationality", Kind: KindText},
			{Name: "partnerBirthCity", Kind: KindText},
			{Name: "partnerBirthCountry", Kind: KindText},
			{Name: "unionDate", Kind: KindDate},
			{Name: "divorceDate", Kind: KindDate},
		},
	},
	{
		Name: "WorkEducation", Slug: "work-education", Ordinal: 9, Section: "workEducation",
		Fields: []Field{
			{Name: "occupation", Kind: KindText},
			{Name: "office", Kind: KindText},
			{Name: "companyOrBossName", Kind: KindText},
			{Name: "companyAddress", Kind: KindText},
			{Name: "companyCity", Kind: KindText},
			{Name: "companyState", Kind: KindText},
			{Name: "companyCountry", Kind: KindText},
			{Name: "companyCep", Kind: KindText},
			{Name: "companyTel", Kind: KindText},
			{Name: "admissionDate", Kind: KindDate},
			{Name: "monthlySalary", Kind: KindText},
			{Name: "retireeDate", Kind: KindDate},
			{Name: "jobDetails", Kind: KindText},
			{Name: "previousJobConfirmation", Kind: KindTristate},
			{Name: "previousJobs", Kind: KindRecordList, DetailOf: "previousJobConfirmation", Element: []Field{
				{Name: "companyName", Kind: KindText, Required: true},
				{Name: "companyAddress", Kind: KindText},
				{Name: "companyCity", Kind: KindText},
				{Name: "companyState", Kind: KindText},
				{Name: "companyCountry", Kind: KindText},
				{Name: "companyCep", Kind: KindText},
				{Name: "companyTel", Kind: KindText},
				{Name: "office", Kind: KindText, Required: true},
				{Name: "supervisorName", Kind: KindText},
				{Name: "admissionDate", Kind: KindDate, Required: true},
				{Name: "resignationDate", Kind: KindDate},
				{Name: "jobDescription", Kind: KindText},
			}},
			{Name: "courseConfirmation", Kind: KindTristate},
			{Name: "courses", Kind: KindRecordList, DetailOf: "courseConfirmation", Element: []Field{
				{Name: "institutionName", Kind: KindText, Required: true},
				{Name: "address", Kind: KindText},
				{Name: "city", Kind: KindText},
				{Name: "state", Kind: KindText},
				{Name: "country", Kind: KindText},
				{Name: "cep", Kind: KindText},
				{Name: "courseName", Kind: KindText, Required: true},
				{Name: "initialDate", Kind: KindDate},
				{Name: "finishDate", Kind: KindDate},
			}},
		},
	},
	{
		Name: "AdditionalInformation", Slug: "additional-information", Ordinal: 10, Section: "additionalInformation",
		Fields: []Field{
			{Name: "languages", Kind: KindStringList},
			{Name: "fiveYearsOtherCountryTravelsConfirmation", Kind: KindTristate},
			{Name: "fiveYearsOtherCountryTravels", Kind: KindStringList, DetailOf: "fiveYearsOtherCountryTravelsConfirmation"},
			{Name: "socialOrganizationConfirmation", Kind: KindTristate},
			{Name: "socialOrganizations", Kind: KindStringList, DetailOf: "socialOrganizationConfirmation"},
			{Name: "weaponTrainingConfirmation", Kind: KindTristate},
			{Name: "weaponTrainingDetails", Kind: KindText, DetailOf: "weaponTrainingConfirmation"},
			{Name: "militaryServiceConfirmation", Kind: KindTristate},
			{Name: "militaryServiceCountry", Kind: KindText, DetailOf: "militaryServiceConfirmation"},
			{Name: "militaryArt", Kind: KindText},
			{Name: "militaryRank", Kind: KindText},
			{Name: "militaryStartDate", Kind: KindDate},
			{Name: "militaryEndDate", Kind: KindDate},
			{Name: "insurgencyOrganizationConfirmation", Kind: KindTristate},
			{Name: "insurgencyOrganizationDetails", Kind: KindText, DetailOf: "insurgencyOrganizationConfirmation"},
		},
	},
	{
		Name: "Security", Slug: "security", Ordinal: 11, Section: "security",
		Fields: securityFields(),
	},
}

// securityQuestions lists the 26 security confirmations. Every one has a
// free-text detail field named "<confirmation minus Confirmation>Details",
// except crimeConfirmation whose detail keeps the legacy name
// crimeConfirmationDetails.
var securityQuestions = []string{
	"contagiousDiseaseConfirmation",
	"mentalDisorderConfirmation",
	"crimeConfirmation",
	"drugsProblemConfirmation",
	"drugTrafficConfirmation",
	"prostitutionConfirmation",
	"moneyLaundryConfirmation",
	"peopleTrafficConfirmation",
	"helpPeopleTrafficConfirmation",
	"parentPeopleTrafficConfirmation",
	"spyConfirmation",
	"terrorismConfirmation",
	"terrorismFinancialAssistConfirmation",
	"terrorismMemberConfirmation",
	"parentTerrorismConfirmation",
	"genocideConfirmation",
	"tortureConfirmation",
	"assassinConfirmation",
	"childSoldierConfirmation",
	"religionLibertyConfirmation",
	"forcedAbortionConfirmation",
	"coerciveTransplantConfirmation",
	"visaFraudConfirmation",
	"deportedConfirmation",
	"childCustodyConfirmation",
	"avoidTaxConfirmation",
}

func securityFields() []Field {
	fields := make([]Field, 0, len(securityQuestions)*2)
	for _, q := range securityQuestions {
		detail := q[:len(q)-len("Confirmation")] + "Details"
		if q == "crimeConfirmation" {
			detail = "crimeConfirmationDetails"
		}
		fields = append(fields,
			Field{Name: q, Kind: KindTristate},
			Field{Name: detail, Kind: KindText, DetailOf: q},
		)
	}
	return fields
}

// StepBySlug resolves a step by its URL slug.
func StepBySlug(slug string) (Step, bool) {
	for _, s := range Steps {
		if s.Slug == slug {
			return s, true
		}
	}
	return Step{}, false
}
