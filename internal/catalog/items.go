package catalog

// Category IDs, stable across document templates.
const (
	CategoryEstablishment   = "businessEstablishment"
	CategoryChange          = "businessChange"
	CategoryCancellation    = "businessCancellation"
	CategoryTax             = "taxService"
	CategoryBank            = "bankService"
	CategoryLicense         = "licenseService"
	CategorySocialInsurance = "socialInsurance"
	CategoryBookkeeping     = "agencyBookkeeping"
)

// defaultCategories is the built-in service catalog. Item keys are stable
// identifiers: once published they are never renamed or reused, since stored
// document snapshots reference them.
var defaultCategories = []CategoryDef{
	{
		ID:          CategoryEstablishment,
		Prefix:      "est",
		DisplayName: "工商设立",
		OutputField: "businessEstablishment",
		Items: []ServiceItem{
			{Key: "est_name_check", DisplayName: "公司核名"},
			{Key: "est_company_registration", DisplayName: "公司设立登记"},
			{Key: "est_business_license", DisplayName: "营业执照办理"},
			{Key: "est_seal_carving", DisplayName: "印章刻制"},
			{Key: "est_articles_drafting", DisplayName: "公司章程起草"},
			{Key: "est_registered_address", DisplayName: "注册地址挂靠"},
			{Key: "est_branch_registration", DisplayName: "分公司设立登记"},
			{Key: "est_individual_business", DisplayName: "个体工商户设立"},
		},
	},
	{
		ID:          CategoryChange,
		Prefix:      "chg",
		DisplayName: "工商变更",
		OutputField: "businessChange",
		Items: []ServiceItem{
			{Key: "chg_company_name", DisplayName: "公司名称变更"},
			{Key: "chg_registered_address", DisplayName: "注册地址变更"},
			{Key: "chg_registered_capital", DisplayName: "注册资本变更"},
			{Key: "chg_shareholder", DisplayName: "股东股权变更"},
			{Key: "chg_legal_representative", DisplayName: "法定代表人变更"},
			{Key: "chg_business_scope", DisplayName: "经营范围变更"},
			{Key: "chg_director_supervisor", DisplayName: "董事监事备案变更"},
			{Key: "chg_license_renewal", DisplayName: "营业执照换发"},
		},
	},
	{
		ID:          CategoryCancellation,
		Prefix:      "cxl",
		DisplayName: "工商注销",
		OutputField: "businessCancellation",
		Items: []ServiceItem{
			{Key: "cxl_company", DisplayName: "公司注销"},
			{Key: "cxl_tax_deregistration", DisplayName: "税务注销"},
			{Key: "cxl_branch", DisplayName: "分公司注销"},
			{Key: "cxl_individual_business", DisplayName: "个体工商户注销"},
			{Key: "cxl_liquidation_notice", DisplayName: "清算组备案公告"},
			{Key: "cxl_seal_cancellation", DisplayName: "印章缴销"},
		},
	},
	{
		ID:          CategoryTax,
		Prefix:      "tax",
		DisplayName: "税务服务",
		OutputField: "taxService",
		Items: []ServiceItem{
			{Key: "tax_registration", DisplayName: "税务登记"},
			{Key: "tax_real_name_auth", DisplayName: "办税人员实名认证"},
			{Key: "tax_invoice_application", DisplayName: "发票申领"},
			{Key: "tax_invoice_device", DisplayName: "税控设备发行"},
			{Key: "tax_general_taxpayer", DisplayName: "一般纳税人认定"},
			{Key: "tax_vat_filing", DisplayName: "增值税申报"},
			{Key: "tax_annual_settlement", DisplayName: "企业所得税汇算清缴"},
			{Key: "tax_verification_report", DisplayName: "税务鉴证报告"},
		},
	},
	{
		ID:          CategoryBank,
		Prefix:      "bank",
		DisplayName: "银行服务",
		OutputField: "bankService",
		Items: []ServiceItem{
			{Key: "bank_basic_account", DisplayName: "银行基本户开立"},
			{Key: "bank_general_account", DisplayName: "银行一般户开立"},
			{Key: "bank_special_account", DisplayName: "专用账户开立"},
			{Key: "bank_account_change", DisplayName: "银行账户信息变更"},
			{Key: "bank_account_cancellation", DisplayName: "银行账户注销"},
			{Key: "bank_payroll_agreement", DisplayName: "代发工资协议办理"},
		},
	},
	{
		ID:          CategoryLicense,
		Prefix:      "lic",
		DisplayName: "资质许可",
		OutputField: "licenseService",
		Items: []ServiceItem{
			{Key: "lic_food_operation", DisplayName: "食品经营许可证"},
			{Key: "lic_catering_service", DisplayName: "餐饮服务许可证"},
			{Key: "lic_liquor_retail", DisplayName: "酒类零售许可证"},
			{Key: "lic_road_transport", DisplayName: "道路运输许可证"},
			{Key: "lic_medical_device", DisplayName: "医疗器械经营备案"},
			{Key: "lic_labor_dispatch", DisplayName: "劳务派遣经营许可证"},
			{Key: "lic_import_export", DisplayName: "进出口经营权"},
			{Key: "lic_icp_filing", DisplayName: "ICP备案"},
		},
	},
	{
		ID:          CategorySocialInsurance,
		Prefix:      "soc",
		DisplayName: "社保公积金",
		OutputField: "socialInsurance",
		Items: []ServiceItem{
			{Key: "soc_insurance_account", DisplayName: "社保开户"},
			{Key: "soc_fund_account", DisplayName: "公积金开户"},
			{Key: "soc_employee_enrollment", DisplayName: "员工参保登记"},
			{Key: "soc_monthly_agency", DisplayName: "社保月度代缴"},
			{Key: "soc_fund_monthly_agency", DisplayName: "公积金月度代缴"},
			{Key: "soc_base_adjustment", DisplayName: "缴费基数调整"},
			{Key: "soc_account_cancellation", DisplayName: "社保公积金销户"},
		},
	},
	{
		ID:          CategoryBookkeeping,
		Prefix:      "acc",
		DisplayName: "代理记账",
		OutputField: "agencyBookkeeping",
		Items: []ServiceItem{
			{Key: "acc_small_scale_monthly", DisplayName: "小规模纳税人代理记账"},
			{Key: "acc_general_monthly", DisplayName: "一般纳税人代理记账"},
			{Key: "acc_old_account_cleanup", DisplayName: "乱账旧账整理"},
			{Key: "acc_annual_report", DisplayName: "工商年报公示"},
			{Key: "acc_financial_statement", DisplayName: "财务报表编制"},
			{Key: "acc_audit_cooperation", DisplayName: "审计配合"},
			{Key: "acc_tax_planning", DisplayName: "税务筹划咨询"},
		},
	},
}
