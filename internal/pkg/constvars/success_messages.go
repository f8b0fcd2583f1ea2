package constvars

const (
	CreateLabRecordFromPDFSuccessMessage  = "PDF data processed and saved successfully"
	CreateLabRecordManualSuccessMessage   = "manual data saved successfully"
	FindLabRecordSuccessMessage           = "lab record retrieved successfully"
	FindLabRecordsByPatientSuccessMessage = "patient lab records retrieved successfully"
	FindLabRecordsByDoctorSuccessMessage  = "doctor lab records retrieved successfully"
	GetReportFileURLSuccessMessage        = "report file url generated successfully"
	AttachDoctorCommentSuccessMessage     = "comment added successfully"
)

const (
	ListMealsSuccessMessage             = "meals retrieved successfully"
	CalculateMealCaloriesSuccessMessage = "meal calories calculated successfully"
	CalculateDayCaloriesSuccessMessage  = "daily calories calculated successfully"
	CreateBMIRecordSuccessMessage       = "BMI data saved successfully"
)

const (
	SendChatMessageSuccessMessage  = "message sent"
	FindConversationSuccessMessage = "conversation retrieved successfully"
)
