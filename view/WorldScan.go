package view

type WorldScanReq struct {
	Entries []string `validate:"required,min=1,max=5000,dive,required,max=256"`
}

type WorldScanResult struct {
	Packages []Package
	Unknown  []string
}
