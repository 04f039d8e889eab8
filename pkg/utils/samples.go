package utils

import (
	"math/rand/v2"
	"strings"
)

// SampleEmail is a sample for a domestic American Airlines flight
var SampleEmail = sampleEmails[0].Body

// Sample is a demo confirmation email for one airline
type Sample struct {
	Airline string
	Body    string
}

var sampleEmails = []Sample{
	{
		Airline: "American Airlines",
		Body:    `
Subject: Your Flight Confirmation - AA1234

Dear John Smith,

Thank you for booking with American Airlines.

Flight Details:
Flight: AA1234
From: LAX (Los Angeles)
To: JFK (New York)
Date: 12/25/2024
Departure: 2:30 PM
Arrival: 10:45 PM
Gate: A12
Terminal: 4
Seat: 14A

Confirmation: ABC123

Please arrive at the airport at least 2 hours before departure.

Safe travels!
American Airlines
`,
	},
	{
		Airline: "United Airlines",
		Body:    `
Subject: United Airlines - Flight Confirmation UA567

Dear Sarah Johnson,

Your United flight is confirmed.

Flight Information:
Flight: UA567
Departure: ORD (Chicago O'Hare)
Arrival: LAX (Los Angeles)
Date: 01/15/2025
Departure Time: 8:15 AM
Arrival Time: 10:30 AM
Gate: B18
Terminal: 1
Seat: 22C

Booking Reference: XYZ789

Thank you for choosing United Airlines.

Best regards,
United Airlines Team
`,
	},
	{
		Airline: "Delta Air Lines",
		Body:    `
Subject: Delta Flight Confirmation - DL2468

Dear Michael Brown,

Welcome aboard Delta Air Lines!

Your Flight Details:
Flight: DL2468
From: ATL (Atlanta)
To: SEA (Seattle)
Date: 02/20/2025
Departure: 11:45 AM
Arrival: 2:20 PM
Gate: C7
Terminal: 2
Seat: 8F

Confirmation Code: DEF456

We look forward to serving you.

Delta Air Lines
`,
	},
	{
		Airline: "Southwest Airlines",
		Body:    `
Subject: Southwest Airlines Boarding Pass - WN1357

Dear Emily Davis,

Thanks for flying Southwest!

Flight: WN1357
Departure: DEN (Denver)
Arrival: PHX (Phoenix)
Date: 03/10/2025
Departure: 6:20 PM
Arrival: 7:55 PM
Gate: A23
Seat: 12B

Confirmation: GHI789

Bags fly free with Southwest!

Southwest Airlines
`,
	},
	{
		Airline: "JetBlue Airways",
		Body:    `
Subject: JetBlue Flight Confirmation B61829

Dear David Wilson,

Your JetBlue flight is ready for takeoff!

Flight Details:
Flight: B61829
From: BOS (Boston)
To: LAX (Los Angeles)
Date: 04/05/2025
Departure: 7:00 AM
Arrival: 10:45 AM
Gate: B12
Terminal: 5
Seat: 15D

Confirmation: JKL012

Experience our award-winning service.

JetBlue Airways
`,
	},
	{
		Airline: "Alaska Airlines",
		Body:    `
Subject: Alaska Airlines Confirmation - AS442

Dear Jennifer Lee,

Thank you for choosing Alaska Airlines.

Flight: AS442
Departure: SEA (Seattle)
Arrival: SFO (San Francisco)
Date: 05/12/2025
Departure: 1:15 PM
Arrival: 3:45 PM
Gate: D15
Terminal: 3
Seat: 9A

Booking Reference: MNO345

Fly with the spirit of the West Coast.

Alaska Airlines
`,
	},
	{
		Airline: "Emirates",
		Body:    `
Subject: Emirates Flight Confirmation EK215

Dear Ahmed Hassan,

Welcome to Emirates.

Flight Information:
Flight: EK215
From: DXB (Dubai)
To: LAX (Los Angeles)
Date: 06/18/2025
Departure: 3:35 AM
Arrival: 8:50 AM
Gate: A1
Terminal: 3
Seat: 7K

Confirmation: PQR678

Experience excellence in the sky.

Emirates
`,
	},
	{
		Airline: "Lufthansa",
		Body:    `
Subject: Lufthansa Flight Confirmation LH441

Dear Hans Mueller,

Guten Tag! Your Lufthansa flight is confirmed.

Flight: LH441
Departure: FRA (Frankfurt)
Arrival: LAX (Los Angeles)
Date: 07/22/2025
Departure: 1:20 PM
Arrival: 4:35 PM
Gate: A50
Terminal: 1
Seat: 12H

Booking Code: STU901

Mehr als nur fliegen.

Lufthansa
`,
	},
	{
		Airline: "British Airways",
		Body:    `
Subject: British Airways Flight Confirmation BA277

Dear James Thompson,

Thank you for choosing British Airways.

Flight Details:
Flight: BA277
From: LHR (London Heathrow)
To: LAX (Los Angeles)
Date: 08/30/2025
Departure: 11:15 AM
Arrival: 2:45 PM
Gate: T5-A12
Terminal: 5
Seat: 14B

Confirmation: VWX234

To fly. To serve.

British Airways
`,
	},
	{
		Airline: "Singapore Airlines",
		Body:    `
Subject: Singapore Airlines Booking Confirmation SQ12

Dear Li Wei,

Thank you for flying with Singapore Airlines.

Flight: SQ12
Departure: SIN (Singapore Changi)
Arrival: LAX (Los Angeles)
Date: 09/15/2025
Departure: 11:35 PM
Arrival: 10:20 PM
Gate: G12
Terminal: 3
Seat: 2A

Reference: YZA567

A great way to fly.

Singapore Airlines
`,
	},
}

// SampleEmails returns a copy of the demo corpus
func SampleEmails() []Sample {
	samples := make([]Sample, len(sampleEmails))
	copy(samples, sampleEmails)
	return samples
}

// RandomSampleEmail picks a demo email uniformly at random
func RandomSampleEmail() string {
	return sampleEmails[rand.IntN(len(sampleEmails))].Body
}

// SampleByAirline finds a sample whose airline name contains name, ignoring case
func SampleByAirline(name string) (Sample, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	for _, s := range sampleEmails {
		if needle != "" && strings.Contains(strings.ToLower(s.Airline), needle) {
			return s, true
		}
	}
	return Sample{}, false
}
