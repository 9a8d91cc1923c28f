package contract

import "github.com/joseph-ayodele/contracts-analyzer/internal/schema"

// One schema per extraction endpoint. Each schema both renders the format
// instructions for its prompt and validates the model's response, so the two
// cannot drift apart. Built once at package init.

var basicInfoSchema = schema.MustObject("basic_info", map[string]any{
	"contract_number":         schema.Str("contract number; empty string when the contract has none"),
	"contract_name":           schema.Str("contract name; empty string when the contract has none"),
	"party_a":                 schema.Str("name of party A (the customer); empty string when absent"),
	"party_b":                 schema.Str("name of party B (the vendor); empty string when absent"),
	"contract_start_date":     schema.Str("contract start date, YYYY/MM/DD; empty string when absent"),
	"contract_end_date":       schema.Str("contract end date, YYYY/MM/DD; empty string when absent"),
	"contract_total_amount":   schema.NullableNumber("total contract amount; null when not stated"),
	"contract_payment_method": schema.Str("payment method; empty string when absent"),
	"contract_currency":       schema.Str("currency code, e.g. CNY; empty string when absent"),
},
	"contract_number", "contract_name", "party_a", "party_b",
	"contract_start_date", "contract_end_date", "contract_total_amount",
	"contract_payment_method", "contract_currency",
)

func deviceInfoItem() map[string]any {
	return schema.Object("one covered device", map[string]any{
		"device_name":         schema.Str("device name; empty string when absent"),
		"registration_number": schema.Str("regulatory registration number; empty string when absent"),
		"device_model":        schema.Str("device model; empty string when absent"),
		"host_system_number":  schema.Str("host system number; empty string when absent"),
		"installation_date":   schema.Str("installation date, YYYY/MM/DD; empty string when absent"),
		"service_start_date":  schema.Str("service start date, YYYY/MM/DD; empty string when absent"),
		"service_end_date":    schema.Str("service end date, YYYY/MM/DD; empty string when absent"),
	},
		"device_name", "registration_number", "device_model", "host_system_number",
		"installation_date", "service_start_date", "service_end_date",
	)
}

var devicesSchema = schema.ItemList("devices", "all devices covered by the contract", deviceInfoItem())

var trainingSchema = schema.ItemList("training_support", "all training commitments in the contract",
	schema.Object("one training commitment", map[string]any{
		"service_type":       schema.NullableStr("contract plan label when explicitly stated, else null"),
		"training_category":  schema.Str("training category, e.g. on-site clinical application training"),
		"applicable_devices": schema.List("applicable device models", schema.Str("")),
		"training_times":     schema.NullableInt("number of training sessions; null when not stated"),
		"training_period":    schema.Str("training period, e.g. within the 3-year contract term"),
		"training_days":      schema.NullableInt("days per session; null when not stated"),
		"training_seats":     schema.NullableInt("seats per session; null when not stated"),
		"training_cost":      schema.NullableStr("who bears travel/lodging/venue costs; null when not stated"),
		"original_contract_snippet": schema.Str("verbatim contract excerpt; do not alter punctuation, " +
			"whitespace or formatting in any way"),
	},
		"service_type", "training_category", "applicable_devices", "training_times",
		"training_period", "training_days", "training_seats", "training_cost",
		"original_contract_snippet",
	))

var afterSalesSchema = schema.MustObject("after_sales_support", map[string]any{
	"guarantee_running_rate":  schema.NullableNumber("guaranteed uptime percentage; null when not stated"),
	"guarantee_mechanism":     schema.Str("guarantee mechanism, e.g. warranty extension for excess downtime"),
	"service_report_form":     schema.Str("service report form, e.g. on-site paper / email / system download"),
	"remote_service":          schema.Str("remote service offering, e.g. InSite remote monitoring"),
	"hotline_support":         schema.Str("support hotline; empty string when absent"),
	"tax_free_parts_priority": schema.Bool("bonded-warehouse spare parts priority"),
},
	"guarantee_running_rate", "guarantee_mechanism", "service_report_form",
	"remote_service", "hotline_support", "tax_free_parts_priority",
)

var sparePartsSchema = schema.ItemList("key_spare_parts", "all part-warranty blocks in the contract",
	schema.Object("one part-warranty block", map[string]any{
		"service_type":  schema.NullableStr("contract plan label when explicitly stated, else null"),
		"covered_items": schema.List("covered parts, e.g. detector, ecg_lead", schema.Str("")),
		"replacement_policy": schema.StrEnum("replacement policy",
			ReplacementAdvanceExchange, ReplacementOnSite, ReplacementReturnToBase),
		"old_part_return_required": schema.NullableBool("whether old parts must be returned; null when not stated"),
		"non_return_penalty_pct":   schema.NullableInt("penalty cap in percent when old parts are not returned; null when not stated"),
		"logistics_by":             schema.NullableStrEnum("who carries logistics", LogisticsByVendor, LogisticsByBuyer),
		"lead_time_business_days":  schema.NullableNumber("shipping/replacement lead time in business days; null when not stated"),
		"original_contract_snippet": schema.Str("verbatim contract excerpt; do not alter punctuation, " +
			"whitespace or formatting in any way"),
		"tubes": schema.List("X-ray tube table; empty list when the contract has none",
			schema.Object("one covered tube", map[string]any{
				"device_model":        schema.Str("registered device model"),
				"host_system_number":  schema.Str("host system number"),
				"xr_tube_id":          schema.Str("XR tube part number"),
				"manufacturer":        schema.Str("manufacturer"),
				"registration_number": schema.Str("regulatory registration number"),
				"contract_start_date": schema.Str("contract start date, YYYY/MM/DD"),
				"contract_end_date":   schema.Str("contract end date, YYYY/MM/DD"),
				"response_time":       schema.NullableNumber("response time in hours; null when not stated"),
			},
				"device_model", "host_system_number", "xr_tube_id", "manufacturer",
				"registration_number", "contract_start_date", "contract_end_date", "response_time",
			)),
		"coils": schema.List("MR coil table; empty list when the contract has none",
			schema.Object("one covered coil", map[string]any{
				"host_system_number": schema.Str("host system number"),
				"coil_order_number":  schema.Str("coil order number"),
				"coil_name":          schema.Str("coil name"),
				"coil_serial_number": schema.Str("coil serial number"),
			},
				"host_system_number", "coil_order_number", "coil_name", "coil_serial_number",
			)),
	},
		"service_type", "covered_items", "replacement_policy", "old_part_return_required",
		"non_return_penalty_pct", "logistics_by", "lead_time_business_days",
		"original_contract_snippet", "tubes", "coils",
	))

var onsiteSLASchema = schema.ItemList("onsite_sla", "all response/arrival SLA blocks in the contract",
	schema.Object("one SLA block", map[string]any{
		"service_type":        schema.NullableStr("contract plan label when explicitly stated, else null"),
		"response_time_hours": schema.NullableNumber("online response time in hours; null when not stated"),
		"on_site_time_hours":  schema.NullableNumber("on-site arrival time in hours; null when not stated"),
		"coverage":            schema.Str("service coverage window, e.g. 24x7 or Mon-Fri 8:30-17:30"),
		"original_contract_snippet": schema.Str("verbatim contract excerpt; do not alter punctuation, " +
			"whitespace or formatting in any way"),
		"devices_info": schema.List("devices covered by this SLA", deviceInfoItem()),
	},
		"service_type", "response_time_hours", "on_site_time_hours", "coverage",
		"original_contract_snippet", "devices_info",
	))

var yearlyMaintenanceSchema = schema.ItemList("yearly_maintenance", "all preventive-maintenance commitments",
	schema.Object("one maintenance commitment", map[string]any{
		"service_type":         schema.NullableStr("contract plan label when explicitly stated, else null"),
		"standard_pm_per_year": schema.Int("standard preventive-maintenance visits per year"),
		"smart_pm_per_year":    schema.Int("enhanced preventive-maintenance visits per year"),
		"remote_pm_per_year":   schema.Int("remote preventive-maintenance sessions per year"),
		"scope": schema.List("maintenance scope items", schema.StrEnum("scope item",
			ScopeDeviceClean, ScopePerformanceTest, ScopeCalibration,
			ScopeMechanicalCheck, ScopeElectricalCheck, ScopeDeepMaintenance)),
		"deliverables": schema.NullableStr("deliverables and reports; null when not stated"),
		"scheduling":   schema.NullableStr("scheduling and lead time; null when not stated"),
		"original_contract_snippet": schema.Str("verbatim contract excerpt; do not alter punctuation, " +
			"whitespace or formatting in any way"),
		"devices_info": schema.List("devices covered by this commitment", deviceInfoItem()),
	},
		"service_type", "standard_pm_per_year", "smart_pm_per_year", "remote_pm_per_year",
		"scope", "deliverables", "scheduling", "original_contract_snippet", "devices_info",
	))

var remoteMaintenanceSchema = schema.ItemList("remote_maintenance", "all remote monitoring/maintenance commitments",
	schema.Object("one remote commitment", map[string]any{
		"service_type": schema.NullableStr("contract plan label when explicitly stated, else null"),
		"platform": schema.NullableStrEnum("remote platform",
			PlatformInSite, PlatformVendor, PlatformThirdParty),
		"ct_remote_pm_per_year":           schema.NullableInt("yearly CT remote maintenance count; null when not stated"),
		"mr_remote_pm_per_year":           schema.NullableInt("yearly MR remote maintenance count; null when not stated"),
		"igs_remote_pm_per_year":          schema.NullableInt("yearly IGS remote maintenance count; null when not stated"),
		"dr_remote_pm_per_year":           schema.NullableInt("yearly DR remote maintenance count; null when not stated"),
		"mammo_remote_pm_per_year":        schema.NullableInt("yearly mammography remote maintenance count; null when not stated"),
		"mobile_dr_remote_pm_per_year":    schema.NullableInt("yearly mobile DR remote maintenance count; null when not stated"),
		"bone_density_remote_pm_per_year": schema.NullableInt("yearly bone-density remote maintenance count; null when not stated"),
		"us_remote_pm_per_year":           schema.NullableInt("yearly ultrasound remote maintenance count; null when not stated"),
		"other_remote_pm_per_year":        schema.NullableInt("yearly remote maintenance count for other modalities; null when not stated"),
		"max_users_per_device":            schema.NullableInt("maximum user accounts per device; null when not stated"),
		"reports":                         schema.List("report types (IPM/usage/alarms/maintenance-log)", schema.Str("")),
		"original_contract_snippet": schema.Str("verbatim contract excerpt; do not alter punctuation, " +
			"whitespace or formatting in any way"),
	},
		"service_type", "platform", "ct_remote_pm_per_year", "mr_remote_pm_per_year",
		"igs_remote_pm_per_year", "dr_remote_pm_per_year", "mammo_remote_pm_per_year",
		"mobile_dr_remote_pm_per_year", "bone_density_remote_pm_per_year",
		"us_remote_pm_per_year", "other_remote_pm_per_year", "max_users_per_device",
		"reports", "original_contract_snippet",
	))

var complianceInfoSchema = schema.MustObject("contract_and_compliance", map[string]any{
	"information_confidentiality_requirements": schema.Bool("whether the contract imposes confidentiality requirements"),
	"liability_of_breach":       schema.Str("liability for breach; markdown bullet points when there are several"),
	"parts_return_requirements": schema.Str("old-part return requirements; empty string when absent"),
	"delivery_requirements":     schema.Str("delivery requirements; empty string when absent"),
	"transportation_insurance":  schema.Str("who bears transportation insurance; empty string when absent"),
	"delivery_location":         schema.Str("delivery location; empty string when absent"),
},
	"information_confidentiality_requirements", "liability_of_breach",
	"parts_return_requirements", "delivery_requirements",
	"transportation_insurance", "delivery_location",
)
