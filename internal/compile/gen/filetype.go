package gen

// fileType lists from http://www.accellera.org/XMLSchema/IPXACT/1685-2014/fileType.xsd

var vhdlTypes = map[string]struct{}{
	"vhdlAmsSource": {},
	"vhdlSource":    {},
	"vhdlSource-87": {},
	"vhdlSource-93": {},
}

var verilogTypes = map[string]struct{}{
	"verilogAmsSource":         {},
	"verilogSource":            {},
	"verilogSource-95":         {},
	"verilogSource-2001":       {},
	"systemVerilogSource":      {},
	"systemVerilogSource-3.0":  {},
	"systemVerilogSource-3.1":  {},
	"systemVerilogSource-3.1a": {},
}

func IsVHDL(fileType string) bool {
	_, ok := vhdlTypes[fileType]
	return ok
}

// IsVerilog reports Verilog and SystemVerilog file types
func IsVerilog(fileType string) bool {
	_, ok := verilogTypes[fileType]
	return ok
}
