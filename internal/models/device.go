package models

// Device represents one entry from the EcoFlow device-list endpoint.
type Device struct {
	// SerialNumber is the vendor-assigned unique identifier for the device.
	SerialNumber string `json:"sn"`

	// DeviceName is the user-visible name configured in the EcoFlow app.
	DeviceName string `json:"deviceName"`

	// ProductName identifies the product line (e.g. "DELTA 2 Max").
	ProductName string `json:"productName"`

	// Online reports whether the device currently has cloud connectivity.
	Online IntBool `json:"online"`
}
