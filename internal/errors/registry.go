package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Host Errors (E001-E019)
	// ============================================

	"E001": {
		Category: CategoryHost,
		Message:  "Host returned no node",
		Detail:   "The host's node-creation primitive returned nil without an error. The reconciler cannot continue without a live node reference.",
	},
	"E002": {
		Category: CategoryHost,
		Message:  "Host failed to create node",
		Detail:   "The host's node-creation primitive returned an error.",
	},
	"E003": {
		Category: CategoryHost,
		Message:  "Nil reconciliation root",
		Detail:   "Patch and ReconcileTrees need a live previous root.",
	},

	// ============================================
	// Protocol Errors (E020-E039)
	// ============================================

	"E020": {
		Category: CategoryProtocol,
		Message:  "Truncated frame",
		Detail:   "The frame is shorter than its header or declared payload length.",
	},
	"E021": {
		Category: CategoryProtocol,
		Message:  "Unexpected frame type",
		Detail:   "Only patch frames carry reconciliation output.",
	},
	"E022": {
		Category: CategoryProtocol,
		Message:  "Invalid patch payload",
		Detail:   "A patch inside the frame could not be decoded.",
	},
	"E023": {
		Category: CategoryProtocol,
		Message:  "Payload exceeds limits",
		Detail:   "A length prefix, collection count, or nesting depth exceeds the decoder limits.",
	},

	// ============================================
	// Description Errors (E040-E059)
	// ============================================

	"E040": {
		Category: CategoryDescription,
		Message:  "Invalid description JSON",
		Detail:   "The tree description is not valid JSON.",
	},
	"E041": {
		Category: CategoryDescription,
		Message:  "Element without tag",
		Detail:   `Every element node needs a "tag"; text nodes use "text" instead.`,
	},
	"E042": {
		Category: CategoryDescription,
		Message:  "Unsupported attribute value",
		Detail:   "Attribute values must be strings, numbers, or booleans.",
	},
	"E043": {
		Category: CategoryDescription,
		Message:  "Invalid focus path",
		Detail:   "A focus path is a slash-separated list of child indexes starting below the root, e.g. 0/1/0.",
	},

	// ============================================
	// Config Errors (E120-E139)
	// ============================================

	"E120": {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
		Detail:   "The keepfocus.json file could not be read or parsed.",
	},
	"E121": {
		Category: CategoryConfig,
		Message:  "Invalid log level",
		Detail:   "log.level must be one of debug, info, warn, error.",
	},
	"E122": {
		Category: CategoryConfig,
		Message:  "Invalid port number",
		Detail:   "server.port must be between 0 and 65535.",
	},
	"E123": {
		Category: CategoryConfig,
		Message:  "Invalid duration",
		Detail:   `Durations use Go syntax, e.g. "30s" or "1m".`,
	},

	// ============================================
	// CLI Errors (E140-E159)
	// ============================================

	"E140": {
		Category: CategoryCLI,
		Message:  "Missing input",
		Detail:   "A previous description is required; the next one may be omitted to remove the tree.",
	},
	"E141": {
		Category: CategoryCLI,
		Message:  "Configuration not found",
		Detail:   "No keepfocus.json was found.",
	},
	"E142": {
		Category: CategoryCLI,
		Message:  "Unknown error code",
	},
}

// GetAllCodes returns all registered error codes in order.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
