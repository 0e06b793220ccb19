package params

import "fmt"

// Definition describes one key of the store: its declared type, its value in
// canonical text and its numeric bounds
type Definition struct {
	Key  string
	Type Type
	Text string
	Min  float64
	Max  float64
}

// Channels are the symmetric channel groups of the default table
var Channels = []string{"ch0", "ch1"}

// DoubleDef builds a numeric definition
func DoubleDef(key string, value, min, max float64) Definition {
	return definitionOf(key, NewDoubleParameter(value, min, max))
}

// BoolDef builds a boolean definition
func BoolDef(key string, value bool) Definition {
	return definitionOf(key, NewBoolParameter(value))
}

// StringDef builds a text definition
func StringDef(key, value string) Definition {
	return definitionOf(key, NewStringParameter(value))
}

func definitionOf(key string, p Parameter) Definition {
	return Definition{Key: key, Type: p.typ, Text: p.text, Min: p.min, Max: p.max}
}

func (d Definition) parameter() Parameter {
	return Parameter{typ: d.Type, text: d.Text, min: d.Min, max: d.Max}
}

// DefaultTable returns the radio's default parameters for every channel
func DefaultTable() []Definition {
	table := make([]Definition, 0, 11*len(Channels))
	for _, ch := range Channels {
		table = append(table, channelDefaults(ch)...)
	}
	return table
}

func channelDefaults(ch string) []Definition {
	key := func(name string) string {
		return fmt.Sprintf("%s_%s", ch, name)
	}

	return []Definition{
		DoubleDef(key("frequency"), 446500000.0, 70e6, 6e9),
		DoubleDef(key("tx_bb_bw"), 500000.0, 500000, 54e6),
		DoubleDef(key("rx_bb_bw"), 500000.0, 500000, 54e6),
		DoubleDef(key("tx_sample_rate"), 1e6, 1e6, 64e6),
		DoubleDef(key("rx_sample_rate"), 1e6, 1e6, 64e6),
		BoolDef(key("tx_enabled"), false),
		BoolDef(key("rx_enabled"), false),
		BoolDef(key("tx_agc_enabled"), true),
		BoolDef(key("rx_agc_enabled"), true),
		DoubleDef(key("tx_gain"), 0.0, -2.0, 60),
		DoubleDef(key("rx_gain"), 0.0, -2.0, 60),
	}
}
