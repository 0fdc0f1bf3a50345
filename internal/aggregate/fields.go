package aggregate

// Atomic fee field IDs for the expense record template. Each field carries a
// single independently entered amount.
const (
	FieldTaxiFee         = "taxiFee"
	FieldParkingFee      = "parkingFee"
	FieldRegistrationFee = "registrationFee"
	FieldStampTaxFee     = "stampTaxFee"
	FieldAgencyFee       = "agencyFee"
	FieldServiceFee      = "serviceFee"
	FieldMaterialFee     = "materialFee"
	FieldPrintingFee     = "printingFee"
	FieldPostageFee      = "postageFee"
	FieldCourierFee      = "courierFee"
	FieldBankChargeFee   = "bankChargeFee"
	FieldHospitalityFee  = "hospitalityFee"
	FieldOtherFee        = "otherFee"
)

// Expense record group IDs.
const (
	GroupTransport     = "transport"
	GroupGovernment    = "government"
	GroupAgency        = "agency"
	GroupMaterial      = "material"
	GroupCommunication = "communication"
	GroupBanking       = "banking"
	GroupMisc          = "misc"
)

// ExpensePartition assigns each atomic fee field of the expense record to
// its named group. The assignment is a partition: every field appears here
// exactly once, which keeps the group subtotals and the grand total
// mathematically consistent.
var ExpensePartition = map[string]string{
	FieldTaxiFee:         GroupTransport,
	FieldParkingFee:      GroupTransport,
	FieldRegistrationFee: GroupGovernment,
	FieldStampTaxFee:     GroupGovernment,
	FieldAgencyFee:       GroupAgency,
	FieldServiceFee:      GroupAgency,
	FieldMaterialFee:     GroupMaterial,
	FieldPrintingFee:     GroupMaterial,
	FieldPostageFee:      GroupCommunication,
	FieldCourierFee:      GroupCommunication,
	FieldBankChargeFee:   GroupBanking,
	FieldHospitalityFee:  GroupMisc,
	FieldOtherFee:        GroupMisc,
}

// ExpenseFields lists the atomic field IDs in document order.
var ExpenseFields = []string{
	FieldTaxiFee,
	FieldParkingFee,
	FieldRegistrationFee,
	FieldStampTaxFee,
	FieldAgencyFee,
	FieldServiceFee,
	FieldMaterialFee,
	FieldPrintingFee,
	FieldPostageFee,
	FieldCourierFee,
	FieldBankChargeFee,
	FieldHospitalityFee,
	FieldOtherFee,
}
