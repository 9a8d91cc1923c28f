// Package contract holds the typed extraction records for equipment service
// contracts, the target schemas that validate them, and the extractor that
// produces them from a digitized text artifact.
package contract

// BasicInfo is the contract-metadata record. String fields that the contract
// does not state come back as empty strings; the total amount is null when
// absent, never zero.
type BasicInfo struct {
	ContractNumber        string   `json:"contract_number"`
	ContractName          string   `json:"contract_name"`
	PartyA                string   `json:"party_a"`
	PartyB                string   `json:"party_b"`
	ContractStartDate     string   `json:"contract_start_date"`
	ContractEndDate       string   `json:"contract_end_date"`
	ContractTotalAmount   *float64 `json:"contract_total_amount"`
	ContractPaymentMethod string   `json:"contract_payment_method"`
	ContractCurrency      string   `json:"contract_currency"`
}

// DeviceInfo identifies one covered device and its service window.
type DeviceInfo struct {
	DeviceName         string `json:"device_name"`
	RegistrationNumber string `json:"registration_number"`
	DeviceModel        string `json:"device_model"`
	HostSystemNumber   string `json:"host_system_number"`
	InstallationDate   string `json:"installation_date"`
	ServiceStartDate   string `json:"service_start_date"`
	ServiceEndDate     string `json:"service_end_date"`
}

// TrainingSupport is one training commitment in the contract.
type TrainingSupport struct {
	ServiceType       *string  `json:"service_type"`
	TrainingCategory  string   `json:"training_category"`
	ApplicableDevices []string `json:"applicable_devices"`
	TrainingTimes     *int     `json:"training_times"`
	TrainingPeriod    string   `json:"training_period"`
	TrainingDays      *int     `json:"training_days"`
	TrainingSeats     *int     `json:"training_seats"`
	TrainingCost      *string  `json:"training_cost"`
	ContractSnippet   string   `json:"original_contract_snippet"`
}

// AfterSalesSupport captures uptime guarantees and support channels.
type AfterSalesSupport struct {
	GuaranteeRunningRate *float64 `json:"guarantee_running_rate"`
	GuaranteeMechanism   string   `json:"guarantee_mechanism"`
	ServiceReportForm    string   `json:"service_report_form"`
	RemoteService        string   `json:"remote_service"`
	HotlineSupport       string   `json:"hotline_support"`
	TaxFreePartsPriority bool     `json:"tax_free_parts_priority"`
}

// Replacement policy and logistics enums for spare-part warranties.
const (
	ReplacementAdvanceExchange = "advance-exchange"
	ReplacementOnSite          = "on-site"
	ReplacementReturnToBase    = "return-to-base"

	LogisticsByVendor = "vendor"
	LogisticsByBuyer  = "buyer"
)

// TubeInfo is one X-ray tube covered as a key spare part.
type TubeInfo struct {
	DeviceModel        string   `json:"device_model"`
	HostSystemNumber   string   `json:"host_system_number"`
	XRTubeID           string   `json:"xr_tube_id"`
	Manufacturer       string   `json:"manufacturer"`
	RegistrationNumber string   `json:"registration_number"`
	ContractStartDate  string   `json:"contract_start_date"`
	ContractEndDate    string   `json:"contract_end_date"`
	ResponseTime       *float64 `json:"response_time"`
}

// CoilInfo is one MR coil covered as a key spare part.
type CoilInfo struct {
	HostSystemNumber string `json:"host_system_number"`
	CoilOrderNumber  string `json:"coil_order_number"`
	CoilName         string `json:"coil_name"`
	CoilSerialNumber string `json:"coil_serial_number"`
}

// KeySparePart is one part-warranty block: coverage, replacement policy and
// turnaround, plus the tube/coil tables when the contract lists them.
type KeySparePart struct {
	ServiceType           *string    `json:"service_type"`
	CoveredItems          []string   `json:"covered_items"`
	ReplacementPolicy     string     `json:"replacement_policy"`
	OldPartReturnRequired *bool      `json:"old_part_return_required"`
	NonReturnPenaltyPct   *int       `json:"non_return_penalty_pct"`
	LogisticsBy           *string    `json:"logistics_by"`
	LeadTimeBusinessDays  *float64   `json:"lead_time_business_days"`
	ContractSnippet       string     `json:"original_contract_snippet"`
	Tubes                 []TubeInfo `json:"tubes"`
	Coils                 []CoilInfo `json:"coils"`
}

// OnsiteSLA is one response/arrival service-level block.
type OnsiteSLA struct {
	ServiceType     *string      `json:"service_type"`
	ResponseTimeHrs *float64     `json:"response_time_hours"`
	OnSiteTimeHrs   *float64     `json:"on_site_time_hours"`
	Coverage        string       `json:"coverage"`
	ContractSnippet string       `json:"original_contract_snippet"`
	DevicesInfo     []DeviceInfo `json:"devices_info"`
}

// Preventive-maintenance scope enum.
const (
	ScopeDeviceClean     = "device-clean"
	ScopePerformanceTest = "performance-test"
	ScopeCalibration     = "calibration"
	ScopeMechanicalCheck = "mechanical-check"
	ScopeElectricalCheck = "electrical-check"
	ScopeDeepMaintenance = "deep-maintenance"
)

// YearlyMaintenance is one preventive-maintenance commitment.
type YearlyMaintenance struct {
	ServiceType       *string      `json:"service_type"`
	StandardPMPerYear int          `json:"standard_pm_per_year"`
	SmartPMPerYear    int          `json:"smart_pm_per_year"`
	RemotePMPerYear   int          `json:"remote_pm_per_year"`
	Scope             []string     `json:"scope"`
	Deliverables      *string      `json:"deliverables"`
	Scheduling        *string      `json:"scheduling"`
	ContractSnippet   string       `json:"original_contract_snippet"`
	DevicesInfo       []DeviceInfo `json:"devices_info"`
}

// Remote-platform enum.
const (
	PlatformInSite     = "InSite"
	PlatformVendor     = "Vendor"
	PlatformThirdParty = "ThirdParty"
)

// RemoteMaintenance is one remote monitoring/maintenance commitment with
// per-modality yearly counts. Counts are null when the modality is not named.
type RemoteMaintenance struct {
	ServiceType          *string  `json:"service_type"`
	Platform             *string  `json:"platform"`
	CTRemotePMPerYear    *int     `json:"ct_remote_pm_per_year"`
	MRRemotePMPerYear    *int     `json:"mr_remote_pm_per_year"`
	IGSRemotePMPerYear   *int     `json:"igs_remote_pm_per_year"`
	DRRemotePMPerYear    *int     `json:"dr_remote_pm_per_year"`
	MammoRemotePMPerYear *int     `json:"mammo_remote_pm_per_year"`
	MobileDRPMPerYear    *int     `json:"mobile_dr_remote_pm_per_year"`
	BoneDensityPMPerYear *int     `json:"bone_density_remote_pm_per_year"`
	USRemotePMPerYear    *int     `json:"us_remote_pm_per_year"`
	OtherRemotePMPerYear *int     `json:"other_remote_pm_per_year"`
	MaxUsersPerDevice    *int     `json:"max_users_per_device"`
	Reports              []string `json:"reports"`
	ContractSnippet      string   `json:"original_contract_snippet"`
}

// ContractAndCompliance captures contract-level obligations.
type ContractAndCompliance struct {
	ConfidentialityRequired bool   `json:"information_confidentiality_requirements"`
	LiabilityOfBreach       string `json:"liability_of_breach"`
	PartsReturnRequirements string `json:"parts_return_requirements"`
	DeliveryRequirements    string `json:"delivery_requirements"`
	TransportationInsurance string `json:"transportation_insurance"`
	DeliveryLocation        string `json:"delivery_location"`
}
