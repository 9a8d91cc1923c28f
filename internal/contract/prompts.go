package contract

// Task instructions per extractor. The format contract itself rides in a
// separate system message rendered from the schema, so these stay focused on
// what to look for in the contract text.

const promptPreamble = "You are a contract analyst for medical imaging equipment service contracts. " +
	"The user message is the full contract text. " +
	"Extract only what the contract states; never invent values. " +
	"For string fields that the contract does not mention, return an empty string. " +
	"For nullable fields, return null when the contract is silent. " +
	"Dates use the YYYY/MM/DD convention. " +
	"Fields named original_contract_snippet must quote the contract verbatim, " +
	"without any change to punctuation, whitespace or formatting. "

const (
	basicInfoPrompt = promptPreamble +
		"Extract the contract metadata: number, name, both parties, start and end dates, " +
		"total amount, payment method and currency."

	devicesPrompt = promptPreamble +
		"List every device covered by the contract with its identification numbers, " +
		"installation date and service window."

	trainingPrompt = promptPreamble +
		"List every training commitment: category, applicable devices, number of sessions, " +
		"period, days and seats per session, and who bears the costs."

	afterSalesPrompt = promptPreamble +
		"Extract the after-sales support terms: uptime guarantee and its mechanism, " +
		"service report form, remote service offering, hotline, and bonded-warehouse parts priority."

	sparePartsPrompt = promptPreamble +
		"List every key-spare-part warranty block (detectors, ECG leads, X-ray tubes, MR coils): " +
		"covered items, replacement policy, old-part return terms, logistics, lead time, " +
		"and the tube/coil tables when present."

	onsiteSLAPrompt = promptPreamble +
		"List every on-site repair SLA block: response and arrival times in hours, " +
		"coverage window, and the devices it applies to."

	yearlyMaintenancePrompt = promptPreamble +
		"List every preventive-maintenance commitment: standard, enhanced and remote visit counts " +
		"per year, scope, deliverables, scheduling, and the devices it applies to."

	remoteMaintenancePrompt = promptPreamble +
		"List every remote monitoring or remote maintenance commitment: platform, yearly counts " +
		"per modality, user-account limits and report types."

	complianceInfoPrompt = promptPreamble +
		"Extract the contract-level obligations: confidentiality, liability for breach, " +
		"old-part return requirements, delivery requirements, transportation insurance " +
		"and delivery location."
)
