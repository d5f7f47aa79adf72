package scpi

import "golang.org/x/xerrors"

// ErrReentrantAccess is the panic value raised when a control callback
// invoked by this package, directly or indirectly, calls back into the same
// Context. The core's propagation algorithm is not reentrant; a reentrant
// call would observe or produce an
// inconsistent intermediate register state, so it is treated the same way
// Go's standard library treats other synchronization misuse — a panic at
// the point of violation rather than a silently wrong result.
var ErrReentrantAccess = xerrors.New("scpi: reentrant access to status core")

// minimalErrorTable is always present: the errors this package itself can
// generate or that every SCPI implementation is expected to recognize.
var minimalErrorTable = map[int16]string{
	0:    "No error",
	-101: "Invalid character",
	-103: "Invalid separator",
	-104: "Data type error",
	-108: "Parameter not allowed",
	-109: "Missing parameter",
	-113: "Undefined header",
	-131: "Invalid suffix",
	-138: "Suffix not allowed",
	-151: "Invalid string data",
	-170: "Expression error",
	-200: "Execution error",
	-224: "Illegal parameter value",
	-310: "System error",
	-350: "Queue overflow",
	-363: "Input buffer overrun",
}

// standardErrorTable is the complete SCPI-99 / IEEE-488.2 error list from
// the upstream scpi-parser library's error.h, beyond the minimal set above.
// Hosts opt individual codes, or the whole table, into a Context's
// translation table via WithStandardErrors / WithAllStandardErrors; codes
// never opted in still push and classify correctly, they just translate to
// "" (see ErrorTranslate).
var standardErrorTable = map[int16]string{
	-100: "Command error",
	-102: "Syntax error",
	-105: "GET not allowed",
	-110: "Command header error",
	-111: "Header separator error",
	-112: "Program mnemonic too long",
	-114: "Header suffix out of range",
	-115: "Unexpected number of parameters",
	-120: "Numeric data error",
	-121: "Invalid character in number",
	-123: "Exponent too large",
	-124: "Too many digits",
	-128: "Numeric data not allowed",
	-130: "Suffix error",
	-134: "Suffix too long",
	-140: "Character data error",
	-141: "Invalid character data",
	-144: "Character data too long",
	-148: "Character data not allowed",
	-150: "String data error",
	-158: "String data not allowed",
	-160: "Block data error",
	-161: "Invalid block data",
	-168: "Block data not allowed",
	-171: "Invalid expression",
	-178: "Expression data not allowed",
	-180: "Macro error",
	-181: "Invalid outside macro definition",
	-183: "Invalid inside macro definition",
	-184: "Macro parameter error",
	-201: "Invalid while in local",
	-202: "Settings lost due to rtl",
	-203: "Command protected",
	-210: "Trigger error",
	-211: "Trigger ignored",
	-212: "Arm ignored",
	-213: "Init ignored",
	-214: "Trigger deadlock",
	-215: "Arm deadlock",
	-220: "Parameter error",
	-221: "Settings conflict",
	-222: "Data out of range",
	-223: "Too much data",
	-225: "Out of memory",
	-226: "Lists not same length",
	-230: "Data corrupt or stale",
	-231: "Data questionable",
	-233: "Invalid version",
	-240: "Hardware error",
	-241: "Hardware missing",
	-250: "Mass storage error",
	-251: "Missing mass storage",
	-252: "Missing media",
	-253: "Corrupt media",
	-254: "Media full",
	-255: "Directory full",
	-256: "File name not found",
	-257: "File name error",
	-258: "Media protected",
	-260: "Expression error",
	-261: "Math error in expression",
	-270: "Macro error",
	-271: "Macro syntax error",
	-272: "Macro execution error",
	-273: "Illegal macro label",
	-274: "Macro parameter error",
	-275: "Macro definition too long",
	-276: "Macro recursion error",
	-277: "Macro redefinition not allowed",
	-278: "Macro header not found",
	-280: "Program error",
	-281: "Cannot create program",
	-282: "Illegal program name",
	-283: "Illegal variable name",
	-284: "Program currently running",
	-285: "Program syntax error",
	-286: "Program runtime error",
	-290: "Memory use error",
	-291: "Out of memory",
	-292: "Referenced name does not exist",
	-293: "Referenced name already exists",
	-294: "Incompatible type",
	-300: "Device specific error",
	-311: "Memory error",
	-312: "PUD memory lost",
	-313: "Calibration memory lost",
	-314: "Save/recall memory lost",
	-315: "Configuration memory lost",
	-320: "Storage fault",
	-321: "Out of memory",
	-330: "Self-test failed",
	-340: "Calibration failed",
	-360: "Communication error",
	-361: "Parity error in program message",
	-362: "Framing error in program message",
	-365: "Time out error",
	-400: "Query error",
	-410: "Query INTERRUPTED",
	-420: "Query UNTERMINATED",
	-430: "Query DEADLOCKED",
	-440: "Query UNTERMINATED after indefinite response",
	-500: "Power on",
	-600: "User request",
	-700: "Request control",
	-800: "Operation complete",
}

// configErrorf wraps a Context-construction failure, grounding every
// init-time validation error in a single message shape.
func configErrorf(format string, args ...interface{}) error {
	return xerrors.Errorf("scpi: "+format, args...)
}
