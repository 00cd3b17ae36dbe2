package label

// Field identifies one contact attribute of a Label
type Field int

const (
	FieldCall Field = iota
	FieldQSODate
	FieldTimeOn
	FieldBand
	FieldStationCallsign
	FieldFreq
	FieldContestID
	FieldFreqRx
	FieldMode
	FieldRSTReceived
	FieldRSTSent
	FieldOperator

	numFields
)

// fieldNames match the ADIF field names, lower-cased
var fieldNames = [numFields]string{
	FieldCall:            "call",
	FieldQSODate:         "qso_date",
	FieldTimeOn:          "time_on",
	FieldBand:            "band",
	FieldStationCallsign: "station_callsign",
	FieldFreq:            "freq",
	FieldContestID:       "contest_id",
	FieldFreqRx:          "freq_rx",
	FieldMode:            "mode",
	FieldRSTReceived:     "rst_rcvd",
	FieldRSTSent:         "rst_sent",
	FieldOperator:        "operator",
}

func (f Field) String() string {
	if !f.valid() {
		return "unknown"
	}
	return fieldNames[f]
}

func (f Field) valid() bool {
	return f >= 0 && f < numFields
}

// Fields returns every Field in declaration order
func Fields() []Field {
	fields := make([]Field, numFields)
	for i := range fields {
		fields[i] = Field(i)
	}
	return fields
}
