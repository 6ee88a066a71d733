package taslog

import "strings"

type damageName struct {
	bit  uint32
	name string
}

// Ordered by bit value.
var damageNames = []damageName{
	{1 << 0, "crush"},
	{1 << 1, "bullet"},
	{1 << 2, "slash"},
	{1 << 3, "burn"},
	{1 << 4, "freeze"},
	{1 << 5, "fall"},
	{1 << 6, "blast"},
	{1 << 7, "club"},
	{1 << 8, "shock"},
	{1 << 9, "sonic"},
	{1 << 10, "energybeam"},
	{1 << 12, "nevergib"},
	{1 << 13, "alwaysgib"},
	{1 << 14, "drown"},
	{1 << 15, "paralyze"},
	{1 << 16, "nervegas"},
	{1 << 17, "poison"},
	{1 << 18, "radiation"},
	{1 << 19, "drownrecover"},
	{1 << 20, "acid"},
	{1 << 21, "slowburn"},
	{1 << 22, "slowfreeze"},
	{1 << 23, "mortar"},
}

// DamageTypes names the damage-type flags set in bits, lowest bit first.
// Bits without a name are reported once as "Others". No bits at all is "Generic".
func DamageTypes(bits uint32) []string {
	var names []string
	for _, d := range damageNames {
		if bits&d.bit != 0 {
			bits &^= d.bit
			names = append(names, d.name)
		}
	}
	if bits != 0 {
		names = append(names, "Others")
	}
	if len(names) == 0 {
		return []string{"Generic"}
	}
	return names
}

// DamageTypeString joins DamageTypes with ", ".
func DamageTypeString(bits uint32) string {
	return strings.Join(DamageTypes(bits), ", ")
}
