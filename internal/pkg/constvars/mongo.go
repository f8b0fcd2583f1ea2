package constvars

const (
	MongoCollectionBloodPressureRecords = "bloodPressureRecords"
	MongoCollectionBloodSugarReports    = "bloodSugarReports"
	MongoCollectionLipidProfileReports  = "lipidProfileReports"
	MongoCollectionFBCReports           = "fbcReports"
	MongoCollectionBMIRecords           = "bmiRecords"
	MongoCollectionMessages             = "messages"
)
