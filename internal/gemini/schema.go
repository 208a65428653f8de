package gemini

import "google.golang.org/genai"

// medicalClaimSchema constrains the model's output to the fixed claim
// record shape: patient, claim and hospital details. Fields outside the
// required sets are optional and may come back null.
var medicalClaimSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"patient_details": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"name": {Type: genai.TypeString},
				"age":  {Type: genai.TypeNumber},
				"gender": {
					Type: genai.TypeString,
					Enum: []string{"MALE", "FEMALE", "OTHER"},
				},
				"contact_number": {Type: genai.TypeString},
				"address":        {Type: genai.TypeString},
			},
			Required: []string{"name", "age", "gender"},
		},
		"claim_details": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"claim_number": {Type: genai.TypeString},
				"claim_date":   {Type: genai.TypeString},
				"claim_type": {
					Type: genai.TypeString,
					Enum: []string{"INPATIENT", "OUTPATIENT", "DAYCARE"},
				},
				"diagnosis":         {Type: genai.TypeString},
				"treatment_details": {Type: genai.TypeString},
				"admission_date":    {Type: genai.TypeString},
				"discharge_date":    {Type: genai.TypeString},
				"total_amount":      {Type: genai.TypeNumber},
				"currency":          {Type: genai.TypeString},
			},
			Required: []string{"claim_number", "claim_date", "claim_type", "total_amount"},
		},
		"hospital_details": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"name":                {Type: genai.TypeString},
				"address":             {Type: genai.TypeString},
				"registration_number": {Type: genai.TypeString},
			},
			Required: []string{"name", "address"},
		},
	},
	Required: []string{"patient_details", "claim_details", "hospital_details"},
}
