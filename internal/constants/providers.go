package constants

// Default API hosts
const (
	NyaaHost    = "https://nyaa.si"
	SukebeiHost = "https://sukebei.nyaa.si"
)
