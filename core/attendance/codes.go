package attendance

// redeemableCodes is the fixed whitelist a student's code is checked against.
// Redemption does not consult issued sessions at all; the two flows are
// disconnected domains today (flagged for product, not silently unified).
var redeemableCodes = map[string]struct{}{
	"ABC123": {}, "XYZ789": {}, "QWE456": {}, "RTY321": {}, "UIO654": {},
	"PAS987": {}, "DFG123": {}, "HJK456": {}, "LZX789": {}, "CVB321": {},
	"NMQ654": {}, "WER987": {}, "SDF123": {}, "XCV456": {}, "BNM789": {},
	"QAZ321": {}, "WSX654": {}, "EDC987": {}, "RFV123": {}, "TGB456": {},
	"YHN789": {}, "UJM321": {}, "IK654": {}, "OL987": {}, "P123": {},
	"A456": {}, "B789": {}, "C321": {}, "D654": {}, "E987": {},
}

// placeholderCourseID is stamped on every redeemed record; the redeem flow
// has no course context of its own.
const placeholderCourseID = "CS101"

// CodeRedeemable reports whether a code is in the whitelist.
func CodeRedeemable(code string) bool {
	_, ok := redeemableCodes[code]
	return ok
}
