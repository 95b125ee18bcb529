package fleet

// skillToCapability maps a mission's required pilot skill to the drone sensor
// capability that skill needs. Lookup is by exact spelling; anything outside
// the map falls back to RGB.
var skillToCapability = map[string]string{
	"Mapping":    "RGB",
	"Survey":     "RGB",
	"Inspection": "RGB",
	"Thermal":    "Thermal",
}

// DefaultCapability is the drone capability assumed for unmapped skills.
const DefaultCapability = "RGB"

// RequiredCapability derives the drone capability for a mission's required
// skill.
func RequiredCapability(requiredSkill string) string {
	if cap, ok := skillToCapability[requiredSkill]; ok {
		return cap
	}
	return DefaultCapability
}
