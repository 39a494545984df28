// models/form.go
package models

import "time"

// Form is the full questionnaire answer set for one Profile. It is a single
// wide document; fields are grouped into one embedded section per wizard
// step purely for code organization. Every confirmation is a *bool so that
// nil can represent "unanswered". Repeatable sub-record lists are ordered
// and always replaced wholesale on write.
type Form struct {
	ID        string `bson:"id" json:"id"`
	ProfileID string `bson:"profileId" json:"profileId"`

	PersonalData          PersonalDataSection          `bson:"personalData" json:"personalData"`
	ContactAndAddress     ContactAndAddressSection     `bson:"contactAndAddress" json:"contactAndAddress"`
	Passport              PassportSection              `bson:"passport" json:"passport"`
	AboutTravel           AboutTravelSection           `bson:"aboutTravel" json:"aboutTravel"`
	TravelCompany         TravelCompanySection         `bson:"travelCompany" json:"travelCompany"`
	PreviousTravel        PreviousTravelSection        `bson:"previousTravel" json:"previousTravel"`
	UsaContact            UsaContactSection            `bson:"usaContact" json:"usaContact"`
	Family                FamilySection                `bson:"family" json:"family"`
	WorkEducation         WorkEducationSection         `bson:"workEducation" json:"workEducation"`
	AdditionalInformation AdditionalInformationSection `bson:"additionalInformation" json:"additionalInformation"`
	Security              SecuritySection              `bson:"security" json:"security"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

type PersonalDataSection struct {
	FirstName                    string     `bson:"firstName,omitempty" json:"firstName,omitempty"`
	LastName                     string     `bson:"lastName,omitempty" json:"lastName,omitempty"`
	CPF                          string     `bson:"cpf,omitempty" json:"cpf,omitempty"`
	Sex                          string     `bson:"sex,omitempty" json:"sex,omitempty"`
	MaritalStatus                string     `bson:"maritalStatus,omitempty" json:"maritalStatus,omitempty"`
	BirthDate                    *time.Time `bson:"birthDate,omitempty" json:"birthDate,omitempty"`
	BirthCity                    string     `bson:"birthCity,omitempty" json:"birthCity,omitempty"`
	BirthState                   string     `bson:"birthState,omitempty" json:"birthState,omitempty"`
	BirthCountry                 string     `bson:"birthCountry,omitempty" json:"birthCountry,omitempty"`
	OtherNamesConfirmation       *bool      `bson:"otherNamesConfirmation,omitempty" json:"otherNamesConfirmation,omitempty"`
	OtherNames                   []string   `bson:"otherNames,omitempty" json:"otherNames,omitempty"`
	OtherNationalityConfirmation *bool      `bson:"otherNationalityConfirmation,omitempty" json:"otherNationalityConfirmation,omitempty"`
	OtherNationalityCountry      string     `bson:"otherNationalityCountry,omitempty" json:"otherNationalityCountry,omitempty"`
	USSocialSecurityNumber       string     `bson:"usSocialSecurityNumber,omitempty" json:"usSocialSecurityNumber,omitempty"`
	USTaxpayerNumber             string     `bson:"usTaxpayerNumber,omitempty" json:"usTaxpayerNumber,omitempty"`
}

type ContactAndAddressSection struct {
	Address                         string   `bson:"address,omitempty" json:"address,omitempty"`
	AddressNumber                   string   `bson:"addressNumber,omitempty" json:"addressNumber,omitempty"`
	District                        string   `bson:"district,omitempty" json:"district,omitempty"`
	City                            string   `bson:"city,omitempty" json:"city,omitempty"`
	State                           string   `bson:"state,omitempty" json:"state,omitempty"`
	CEP                             string   `bson:"cep,omitempty" json:"cep,omitempty"`
	Country                         string   `bson:"country,omitempty" json:"country,omitempty"`
	OtherPostalAddressConfirmation  *bool    `bson:"otherPostalAddressConfirmation,omitempty" json:"otherPostalAddressConfirmation,omitempty"`
	OtherPostalAddress              string   `bson:"otherPostalAddress,omitempty" json:"otherPostalAddress,omitempty"`
	Cel                             string   `bson:"cel,omitempty" json:"cel,omitempty"`
	Tel                             string   `bson:"tel,omitempty" json:"tel,omitempty"`
	FiveYearsOtherTelConfirmation   *bool    `bson:"fiveYearsOtherTelConfirmation,omitempty" json:"fiveYearsOtherTelConfirmation,omitempty"`
	OtherTel                        []string `bson:"otherTel,omitempty" json:"otherTel,omitempty"`
	Email                           string   `bson:"email,omitempty" json:"email,omitempty"`
	FiveYearsOtherEmailConfirmation *bool    `bson:"fiveYearsOtherEmailConfirmation,omitempty" json:"fiveYearsOtherEmailConfirmation,omitempty"`
	OtherEmail                      string   `bson:"otherEmail,omitempty" json:"otherEmail,omitempty"`
	SocialMedia                     []string `bson:"socialMedia,omitempty" json:"socialMedia,omitempty"`
}

// LostPassport is one previously lost or stolen passport.
type LostPassport struct {
	Number  string `bson:"number,omitempty" json:"number,omitempty"`
	Country string `bson:"country" json:"country"`
	Details string `bson:"details" json:"details"`
}

type PassportSection struct {
	PassportNumber           string         `bson:"passportNumber,omitempty" json:"passportNumber,omitempty"`
	PassportIssuingCountry   string         `bson:"passportIssuingCountry,omitempty" json:"passportIssuingCountry,omitempty"`
	PassportIssuingCity      string         `bson:"passportIssuingCity,omitempty" json:"passportIssuingCity,omitempty"`
	PassportIssuingState     string         `bson:"passportIssuingState,omitempty" json:"passportIssuingState,omitempty"`
	PassportIssuingDate      *time.Time     `bson:"passportIssuingDate,omitempty" json:"passportIssuingDate,omitempty"`
	PassportExpireDate       *time.Time     `bson:"passportExpireDate,omitempty" json:"passportExpireDate,omitempty"`
	PassportLostConfirmation *bool          `bson:"passportLostConfirmation,omitempty" json:"passportLostConfirmation,omitempty"`
	LostPassports            []LostPassport `bson:"lostPassports,omitempty" json:"lostPassports,omitempty"`
}

type AboutTravelSection struct {
	TravelItineraryConfirmation *bool      `bson:"travelItineraryConfirmation,omitempty" json:"travelItineraryConfirmation,omitempty"`
	USAPreviewArriveDate        *time.Time `bson:"usaPreviewArriveDate,omitempty" json:"usaPreviewArriveDate,omitempty"`
	ArriveFlight                string     `bson:"arriveFlight,omitempty" json:"arriveFlight,omitempty"`
	ArriveCity                  string     `bson:"arriveCity,omitempty" json:"arriveCity,omitempty"`
	USAPreviewReturnDate        *time.Time `bson:"usaPreviewReturnDate,omitempty" json:"usaPreviewReturnDate,omitempty"`
	ReturnFlight                string     `bson:"returnFlight,omitempty" json:"returnFlight,omitempty"`
	ReturnCity                  string     `bson:"returnCity,omitempty" json:"returnCity,omitempty"`
	EstimatedTime               string     `bson:"estimatedTime,omitempty" json:"estimatedTime,omitempty"`
	VisitLocations              []string   `bson:"visitLocations,omitempty" json:"visitLocations,omitempty"`
	USACity                     string     `bson:"usaCity,omitempty" json:"usaCity,omitempty"`
	USAAddress                  string     `bson:"usaAddress,omitempty" json:"usaAddress,omitempty"`
	USAZipCode                  string     `bson:"usaZipCode,omitempty" json:"usaZipCode,omitempty"`
	PayerNameOrCompany          string     `bson:"payerNameOrCompany,omitempty" json:"payerNameOrCompany,omitempty"`
	PayerTel                    string     `bson:"payerTel,omitempty" json:"payerTel,omitempty"`
	PayerAddress                string     `bson:"payerAddress,omitempty" json:"payerAddress,omitempty"`
	PayerRelation               string     `bson:"payerRelation,omitempty" json:"payerRelation,omitempty"`
	PayerEmail                  string     `bson:"payerEmail,omitempty" json:"payerEmail,omitempty"`
}

// TravelCompanion is one person traveling with the applicant.
type TravelCompanion struct {
	Name     string `bson:"name" json:"name"`
	Relation string `bson:"relation" json:"relation"`
}

type TravelCompanySection struct {
	OtherPeopleTravelingConfirmation *bool             `bson:"otherPeopleTravelingConfirmation,omitempty" json:"otherPeopleTravelingConfirmation,omitempty"`
	OtherPeopleTraveling             []TravelCompanion `bson:"otherPeopleTraveling,omitempty" json:"otherPeopleTraveling,omitempty"`
	GroupMemberConfirmation          *bool             `bson:"groupMemberConfirmation,omitempty" json:"groupMemberConfirmation,omitempty"`
	GroupName                        string            `bson:"groupName,omitempty" json:"groupName,omitempty"`
}

// USAVisit is one previous stay in the USA.
type USAVisit struct {
	ArriveDate    *time.Time `bson:"arriveDate" json:"arriveDate"`
	EstimatedTime string     `bson:"estimatedTime" json:"estimatedTime"`
}

// DriverLicense is one American driver license held by the applicant.
type DriverLicense struct {
	LicenseNumber string `bson:"licenseNumber" json:"licenseNumber"`
	State         string `bson:"state" json:"state"`
}

type PreviousTravelSection struct {
	HasBeenOnUSAConfirmation       *bool           `bson:"hasBeenOnUSAConfirmation,omitempty" json:"hasBeenOnUSAConfirmation,omitempty"`
	USALastTravels                 []USAVisit      `bson:"usaLastTravels,omitempty" json:"usaLastTravels,omitempty"`
	AmericanLicenseConfirmation    *bool           `bson:"americanLicenseConfirmation,omitempty" json:"americanLicenseConfirmation,omitempty"`
	AmericanLicenses               []DriverLicense `bson:"americanLicenses,omitempty" json:"americanLicenses,omitempty"`
	USAVisaConfirmation            *bool           `bson:"usaVisaConfirmation,omitempty" json:"usaVisaConfirmation,omitempty"`
	VisaIssuingDate                *time.Time      `bson:"visaIssuingDate,omitempty" json:"visaIssuingDate,omitempty"`
	VisaNumber                     string          `bson:"visaNumber,omitempty" json:"visaNumber,omitempty"`
	LostVisaConfirmation           *bool           `bson:"lostVisaConfirmation,omitempty" json:"lostVisaConfirmation,omitempty"`
	LostVisaDetails                string          `bson:"lostVisaDetails,omitempty" json:"lostVisaDetails,omitempty"`
	CanceledVisaConfirmation       *bool           `bson:"canceledVisaConfirmation,omitempty" json:"canceledVisaConfirmation,omitempty"`
	CanceledVisaDetails            string          `bson:"canceledVisaDetails,omitempty" json:"canceledVisaDetails,omitempty"`
	DeniedVisaConfirmation         *bool           `bson:"deniedVisaConfirmation,omitempty" json:"deniedVisaConfirmation,omitempty"`
	DeniedVisaDetails              string          `bson:"deniedVisaDetails,omitempty" json:"deniedVisaDetails,omitempty"`
	ImmigrationRequestConfirmation *bool           `bson:"immigrationRequestConfirmation,omitempty" json:"immigrationRequestConfirmation,omitempty"`
	ImmigrationRequestDetails      string          `bson:"immigrationRequestDetails,omitempty" json:"immigrationRequestDetails,omitempty"`
}

type UsaContactSection struct {
	ContactName     string `bson:"contactName,omitempty" json:"contactName,omitempty"`
	ContactRelation string `bson:"contactRelation,omitempty" json:"contactRelation,omitempty"`
	ContactAddress  string `bson:"contactAddress,omitempty" json:"contactAddress,omitempty"`
	ContactZipCode  string `bson:"contactZipCode,omitempty" json:"contactZipCode,omitempty"`
	ContactCity     string `bson:"contactCity,omitempty" json:"contactCity,omitempty"`
	ContactState    string `bson:"contactState,omitempty" json:"contactState,omitempty"`
	ContactTel      string `bson:"contactTel,omitempty" json:"contactTel,omitempty"`
	ContactEmail    string `bson:"contactEmail,omitempty" json:"contactEmail,omitempty"`
}

// FamilyMember is one relative living in the USA.
type FamilyMember struct {
	Name      string `bson:"name" json:"name"`
	Relation  string `bson:"relation" json:"relation"`
	Situation string `bson:"situation" json:"situation"`
}

type FamilySection struct {
	FatherCompleteName            string         `bson:"fatherCompleteName,omitempty" json:"fatherCompleteName,omitempty"`
	FatherBirthdate               *time.Time     `bson:"fatherBirthdate,omitempty" json:"fatherBirthdate,omitempty"`
	FatherLiveInUSAConfirmation   *bool          `bson:"fatherLiveInUSAConfirmation,omitempty" json:"fatherLiveInUSAConfirmation,omitempty"`
	FatherUSASituation            string         `bson:"fatherUsaSituation,omitempty" json:"fatherUsaSituation,omitempty"`
	MotherCompleteName            string         `bson:"motherCompleteName,omitempty" json:"motherCompleteName,omitempty"`
	MotherBirthdate               *time.Time     `bson:"motherBirthdate,omitempty" json:"motherBirthdate,omitempty"`
	MotherLiveInUSAConfirmation   *bool          `bson:"motherLiveInUSAConfirmation,omitempty" json:"motherLiveInUSAConfirmation,omitempty"`
	MotherUSASituation            string         `bson:"motherUsaSituation,omitempty" json:"motherUsaSituation,omitempty"`
	FamilyLivingInUSAConfirmation *bool          `bson:"familyLivingInUSAConfirmation,omitempty" json:"familyLivingInUSAConfirmation,omitempty"`
	FamilyLivingInUSA             []FamilyMember `bson:"familyLivingInUSA,omitempty" json:"familyLivingInUSA,omitempty"`
	PartnerCompleteName           string         `bson:"partnerCompleteName,omitempty" json:"partnerCompleteName,omitempty"`
	PartnerBirthdate              *time.Time     `bson:"partnerBirthdate,omitempty" json:"partnerBirthdate,omitempty"`
	PartnerNationality            string         `bson:"partnerNationality,omitempty" json:"partnerNationality,omitempty"`
	PartnerBirthCity              string         `bson:"partnerBirthCity,omitempty" json:"partnerBirthCity,omitempty"`
	PartnerBirthCountry           string         `bson:"partnerBirthCountry,omitempty" json:"partnerBirthCountry,omitempty"`
	UnionDate                     *time.Time     `bson:"unionDate,omitempty" json:"unionDate,omitempty"`
	DivorceDate                   *time.Time     `bson:"divorceDate,omitempty" json:"divorceDate,omitempty"`
}

// PreviousJob is one prior employment record.
type PreviousJob struct {
	CompanyName     string     `bson:"companyName" json:"companyName"`
	CompanyAddress  string     `bson:"companyAddress,omitempty" json:"companyAddress,omitempty"`
	CompanyCity     string     `bson:"companyCity,omitempty" json:"companyCity,omitempty"`
	CompanyState    string     `bson:"companyState,omitempty" json:"companyState,omitempty"`
	CompanyCountry  string     `bson:"companyCountry,omitempty" json:"companyCountry,omitempty"`
	CompanyCEP      string     `bson:"companyCep,omitempty" json:"companyCep,omitempty"`
	CompanyTel      string     `bson:"companyTel,omitempty" json:"companyTel,omitempty"`
	Office          string     `bson:"office" json:"office"`
	SupervisorName  string     `bson:"supervisorName,omitempty" json:"supervisorName,omitempty"`
	AdmissionDate   *time.Time `bson:"admissionDate" json:"admissionDate"`
	ResignationDate *time.Time `bson:"resignationDate,omitempty" json:"resignationDate,omitempty"`
	JobDescription  string     `bson:"jobDescription,omitempty" json:"jobDescription,omitempty"`
}

// Course is one education record above high school.
type Course struct {
	InstitutionName string     `bson:"institutionName" json:"institutionName"`
	Address         string     `bson:"address,omitempty" json:"address,omitempty"`
	City            string     `bson:"city,omitempty" json:"city,omitempty"`
	State           string     `bson:"state,omitempty" json:"state,omitempty"`
	Country         string     `bson:"country,omitempty" json:"country,omitempty"`
	CEP             string     `bson:"cep,omitempty" json:"cep,omitempty"`
	CourseName      string     `bson:"courseName" json:"courseName"`
	InitialDate     *time.Time `bson:"initialDate,omitempty" json:"initialDate,omitempty"`
	FinishDate      *time.Time `bson:"finishDate,omitempty" json:"finishDate,omitempty"`
}

type WorkEducationSection struct {
	Occupation              string        `bson:"occupation,omitempty" json:"occupation,omitempty"`
	Office                  string        `bson:"office,omitempty" json:"office,omitempty"`
	CompanyOrBossName       string        `bson:"companyOrBossName,omitempty" json:"companyOrBossName,omitempty"`
	CompanyAddress          string        `bson:"companyAddress,omitempty" json:"companyAddress,omitempty"`
	CompanyCity             string        `bson:"companyCity,omitempty" json:"companyCity,omitempty"`
	CompanyState            string        `bson:"companyState,omitempty" json:"companyState,omitempty"`
	CompanyCountry          string        `bson:"companyCountry,omitempty" json:"companyCountry,omitempty"`
	CompanyCEP              string        `bson:"companyCep,omitempty" json:"companyCep,omitempty"`
	CompanyTel              string        `bson:"companyTel,omitempty" json:"companyTel,omitempty"`
	AdmissionDate           *time.Time    `bson:"admissionDate,omitempty" json:"admissionDate,omitempty"`
	MonthlySalary           string        `bson:"monthlySalary,omitempty" json:"monthlySalary,omitempty"`
	RetireeDate             *time.Time    `bson:"retireeDate,omitempty" json:"retireeDate,omitempty"`
	JobDetails              string        `bson:"jobDetails,omitempty" json:"jobDetails,omitempty"`
	PreviousJobConfirmation *bool         `bson:"previousJobConfirmation,omitempty" json:"previousJobConfirmation,omitempty"`
	PreviousJobs            []PreviousJob `bson:"previousJobs,omitempty" json:"previousJobs,omitempty"`
	CourseConfirmation      *bool         `bson:"courseConfirmation,omitempty" json:"courseConfirmation,omitempty"`
	Courses                 []Course      `bson:"courses,omitempty" json:"courses,omitempty"`
}

type AdditionalInformationSection struct {
	Languages                                []string   `bson:"languages,omitempty" json:"languages,omitempty"`
	FiveYearsOtherCountryTravelsConfirmation *bool      `bson:"fiveYearsOtherCountryTravelsConfirmation,omitempty" json:"fiveYearsOtherCountryTravelsConfirmation,omitempty"`
	FiveYearsOtherCountryTravels             []string   `bson:"fiveYearsOtherCountryTravels,omitempty" json:"fiveYearsOtherCountryTravels,omitempty"`
	SocialOrganizationConfirmation           *bool      `bson:"socialOrganizationConfirmation,omitempty" json:"socialOrganizationConfirmation,omitempty"`
	SocialOrganizations                      []string   `bson:"socialOrganizations,omitempty" json:"socialOrganizations,omitempty"`
	WeaponTrainingConfirmation               *bool      `bson:"weaponTrainingConfirmation,omitempty" json:"weaponTrainingConfirmation,omitempty"`
	WeaponTrainingDetails                    string     `bson:"weaponTrainingDetails,omitempty" json:"weaponTrainingDetails,omitempty"`
	MilitaryServiceConfirmation              *bool      `bson:"militaryServiceConfirmation,omitempty" json:"militaryServiceConfirmation,omitempty"`
	MilitaryServiceCountry                   string     `bson:"militaryServiceCountry,omitempty" json:"militaryServiceCountry,omitempty"`
	MilitaryArt                              string     `bson:"militaryArt,omitempty" json:"militaryArt,omitempty"`
	MilitaryRank                             string     `bson:"militaryRank,omitempty" json:"militaryRank,omitempty"`
	MilitaryStartDate                        *time.Time `bson:"militaryStartDate,omitempty" json:"militaryStartDate,omitempty"`
	MilitaryEndDate                          *time.Time `bson:"militaryEndDate,omitempty" json:"militaryEndDate,omitempty"`
	InsurgencyOrganizationConfirmation       *bool      `bson:"insurgencyOrganizationConfirmation,omitempty" json:"insurgencyOrganizationConfirmation,omitempty"`
	InsurgencyOrganizationDetails            string     `bson:"insurgencyOrganizationDetails,omitempty" json:"insurgencyOrganizationDetails,omitempty"`
}

type SecuritySection struct {
	ContagiousDiseaseConfirmation        *bool  `bson:"contagiousDiseaseConfirmation,omitempty" json:"contagiousDiseaseConfirmation,omitempty"`
	ContagiousDiseaseDetails             string `bson:"contagiousDiseaseDetails,omitempty" json:"contagiousDiseaseDetails,omitempty"`
	MentalDisorderConfirmation           *bool  `bson:"mentalDisorderConfirmation,omitempty" json:"mentalDisorderConfirmation,omitempty"`
	MentalDisorderDetails                string `bson:"mentalDisorderDetails,omitempty" json:"mentalDisorderDetails,omitempty"`
	CrimeConfirmation                    *bool  `bson:"crimeConfirmation,omitempty" json:"crimeConfirmation,omitempty"`
	CrimeConfirmationDetails             string `bson:"crimeConfirmationDetails,omitempty" json:"crimeConfirmationDetails,omitempty"`
	DrugsProblemConfirmation             *bool  `bson:"drugsProblemConfirmation,omitempty" json:"drugsProblemConfirmation,omitempty"`
	DrugsProblemDetails                  string `bson:"drugsProblemDetails,omitempty" json:"drugsProblemDetails,omitempty"`
	DrugTrafficConfirmation              *bool  `bson:"drugTrafficConfirmation,omitempty" json:"drugTrafficConfirmation,omitempty"`
	DrugTrafficDetails                   string `bson:"drugTrafficDetails,omitempty" json:"drugTrafficDetails,omitempty"`
	ProstitutionConfirmation             *bool  `bson:"prostitutionConfirmation,omitempty" json:"prostitutionConfirmation,omitempty"`
	ProstitutionDetails                  string `bson:"prostitutionDetails,omitempty" json:"prostitutionDetails,omitempty"`
	MoneyLaundryConfirmation             *bool  `bson:"moneyLaundryConfirmation,omitempty" json:"moneyLaundryConfirmation,omitempty"`
	MoneyLaundryDetails                  string `bson:"moneyLaundryDetails,omitempty" json:"moneyLaundryDetails,omitempty"`
	PeopleTrafficConfirmation            *bool  `bson:"peopleTrafficConfirmation,omitempty" json:"peopleTrafficConfirmation,omitempty"`
	PeopleTrafficDetails                 string `bson:"peopleTrafficDetails,omitempty" json:"peopleTrafficDetails,omitempty"`
	HelpPeopleTrafficConfirmation        *bool  `bson:"helpPeopleTrafficConfirmation,omitempty" json:"helpPeopleTrafficConfirmation,omitempty"`
	HelpPeopleTrafficDetails             string `bson:"helpPeopleTrafficDetails,omitempty" json:"helpPeopleTrafficDetails,omitempty"`
	ParentPeopleTrafficConfirmation      *bool  `bson:"parentPeopleTrafficConfirmation,omitempty" json:"parentPeopleTrafficConfirmation,omitempty"`
	ParentPeopleTrafficDetails           string `bson:"parentPeopleTrafficDetails,omitempty" json:"parentPeopleTrafficDetails,omitempty"`
	SpyConfirmation                      *bool  `bson:"spyConfirmation,omitempty" json:"spyConfirmation,omitempty"`
	SpyDetails                           string `bson:"spyDetails,omitempty" json:"spyDetails,omitempty"`
	TerrorismConfirmation                *bool  `bson:"terrorismConfirmation,omitempty" json:"terrorismConfirmation,omitempty"`
	TerrorismDetails                     string `bson:"terrorismDetails,omitempty" json:"terrorismDetails,omitempty"`
	TerrorismFinancialAssistConfirmation *bool  `bson:"terrorismFinancialAssistConfirmation,omitempty" json:"terrorismFinancialAssistConfirmation,omitempty"`
	TerrorismFinancialAssistDetails      string `bson:"terrorismFinancialAssistDetails,omitempty" json:"terrorismFinancialAssistDetails,omitempty"`
	TerrorismMemberConfirmation          *bool  `bson:"terrorismMemberConfirmation,omitempty" json:"terrorismMemberConfirmation,omitempty"`
	TerrorismMemberDetails               string `bson:"terrorismMemberDetails,omitempty" json:"terrorismMemberDetails,omitempty"`
	ParentTerrorismConfirmation          *bool  `bson:"parentTerrorismConfirmation,omitempty" json:"parentTerrorismConfirmation,omitempty"`
	ParentTerrorismDetails               string `bson:"parentTerrorismDetails,omitempty" json:"parentTerrorismDetails,omitempty"`
	GenocideConfirmation                 *bool  `bson:"genocideConfirmation,omitempty" json:"genocideConfirmation,omitempty"`
	GenocideDetails                      string `bson:"genocideDetails,omitempty" json:"genocideDetails,omitempty"`
	TortureConfirmation                  *bool  `bson:"tortureConfirmation,omitempty" json:"tortureConfirmation,omitempty"`
	TortureDetails                       string `bson:"tortureDetails,omitempty" json:"tortureDetails,omitempty"`
	AssassinConfirmation                 *bool  `bson:"assassinConfirmation,omitempty" json:"assassinConfirmation,omitempty"`
	AssassinDetails                      string `bson:"assassinDetails,omitempty" json:"assassinDetails,omitempty"`
	ChildSoldierConfirmation             *bool  `bson:"childSoldierConfirmation,omitempty" json:"childSoldierConfirmation,omitempty"`
	ChildSoldierDetails                  string `bson:"childSoldierDetails,omitempty" json:"childSoldierDetails,omitempty"`
	ReligionLibertyConfirmation          *bool  `bson:"religionLibertyConfirmation,omitempty" json:"religionLibertyConfirmation,omitempty"`
	ReligionLibertyDetails               string `bson:"religionLibertyDetails,omitempty" json:"religionLibertyDetails,omitempty"`
	ForcedAbortionConfirmation           *bool  `bson:"forcedAbortionConfirmation,omitempty" json:"forcedAbortionConfirmation,omitempty"`
	ForcedAbortionDetails                string `bson:"forcedAbortionDetails,omitempty" json:"forcedAbortionDetails,omitempty"`
	CoerciveTransplantConfirmation       *bool  `bson:"coerciveTransplantConfirmation,omitempty" json:"coerciveTransplantConfirmation,omitempty"`
	CoerciveTransplantDetails            string `bson:"coerciveTransplantDetails,omitempty" json:"coerciveTransplantDetails,omitempty"`
	VisaFraudConfirmation                *bool  `bson:"visaFraudConfirmation,omitempty" json:"visaFraudConfirmation,omitempty"`
	VisaFraudDetails                     string `bson:"visaFraudDetails,omitempty" json:"visaFraudDetails,omitempty"`
	DeportedConfirmation                 *bool  `bson:"deportedConfirmation,omitempty" json:"deportedConfirmation,omitempty"`
	DeportedDetails                      string `bson:"deportedDetails,omitempty" json:"deportedDetails,omitempty"`
	ChildCustodyConfirmation             *bool  `bson:"childCustodyConfirmation,omitempty" json:"childCustodyConfirmation,omitempty"`
	ChildCustodyDetails                  string `bson:"childCustodyDetails,omitempty" json:"childCustodyDetails,omitempty"`
	AvoidTaxConfirmation                 *bool  `bson:"avoidTaxConfirmation,omitempty" json:"avoidTaxConfirmation,omitempty"`
	AvoidTaxDetails                      string `bson:"avoidTaxDetails,omitempty" json:"avoidTaxDetails,omitempty"`
}
