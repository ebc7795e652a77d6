// Package validator encodes install payloads for pluggable account
// validator modules. Each encoder is a pure function: one structured
// input, one Module (or error), no I/O and no shared state.
package validator

// Module is the result of every validator encoder: the contract to
// install and the ABI payload it consumes at install time.
type Module struct {
	Address           string `json:"address"`
	InitData          string `json:"initData"`
	DeInitData        string `json:"deInitData"`
	AdditionalContext string `json:"additionalContext"`
	Type              string `json:"type"`
}

// newValidatorModule builds a Module with the fixed empty-payload
// sentinels and the "validator" type tag.
func newValidatorModule(address, initData string) Module {
	return Module{
		Address:           address,
		InitData:          initData,
		DeInitData:        "0x",
		AdditionalContext: "0x",
		Type:              "validator",
	}
}
