package j1979

const vinPID = PID(0x02)

// DecodeVIN decodes a SID 09 / PID 02 response into the Vehicle
// Identification Number. data[2] is a count-of-data-items byte that
// carries no information this layer needs and is skipped; the VIN is
// the remainder of the payload. No character-set validation is
// performed here.
func (d *Decoder) DecodeVIN(data []byte) (string, error) {
	const minLen = 3
	if err := validateEnvelope(ServiceVehicleInfo, data, minLen); err != nil || data[1] != byte(vinPID) {
		d.log.Warn("DecodeVIN", "invalid envelope")
		return "", &DecodeError{SID: ServiceVehicleInfo, PID: vinPID, Err: ErrInvalidEnvelope}
	}

	if len(data) <= 3 {
		return "", &DecodeError{SID: ServiceVehicleInfo, PID: vinPID, Err: ErrEmptyResult}
	}

	vin := string(data[3:])
	if vin == "" {
		return "", &DecodeError{SID: ServiceVehicleInfo, PID: vinPID, Err: ErrEmptyResult}
	}
	return vin, nil
}
