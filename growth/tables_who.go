/*
 * Copyright 2025 Sproutbook Authors
 * SPDX-License-Identifier: Apache-2.0
 */
package growth

// WHO Child Growth Standards reference tables. Values are the 3rd,
// 15th, 50th, 85th and 97th percentile boundaries, tabulated at
// roughly bimonthly/quarterly ages through the second year and
// annually thereafter. Heights and head circumferences are in
// centimeters, weights in kilograms.
var whoTables = map[Metric]map[Sex][]Breakpoint{
	MetricHeight: {
		SexMale: {
			{AgeMonths: 0, P3: 46.1, P15: 47.9, P50: 49.9, P85: 51.8, P97: 53.4},
			{AgeMonths: 2, P3: 54.4, P15: 56.4, P50: 58.4, P85: 60.5, P97: 62.2},
			{AgeMonths: 4, P3: 59.7, P15: 61.7, P50: 63.9, P85: 66.0, P97: 67.8},
			{AgeMonths: 6, P3: 63.3, P15: 65.4, P50: 67.6, P85: 69.8, P97: 71.6},
			{AgeMonths: 9, P3: 67.5, P15: 69.7, P50: 72.0, P85: 74.2, P97: 76.2},
			{AgeMonths: 12, P3: 71.0, P15: 73.4, P50: 75.7, P85: 78.1, P97: 80.5},
			{AgeMonths: 15, P3: 74.1, P15: 76.6, P50: 79.1, P85: 81.7, P97: 84.2},
			{AgeMonths: 18, P3: 76.9, P15: 79.6, P50: 82.3, P85: 85.0, P97: 87.7},
			{AgeMonths: 24, P3: 81.0, P15: 84.1, P50: 87.1, P85: 90.2, P97: 93.2},
			{AgeMonths: 36, P3: 88.7, P15: 92.4, P50: 96.1, P85: 99.8, P97: 103.5},
			{AgeMonths: 48, P3: 94.9, P15: 99.1, P50: 103.3, P85: 107.5, P97: 111.7},
			{AgeMonths: 60, P3: 100.7, P15: 105.3, P50: 110.0, P85: 114.6, P97: 119.2},
		},
		SexFemale: {
			{AgeMonths: 0, P3: 45.4, P15: 47.2, P50: 49.1, P85: 51.1, P97: 52.9},
			{AgeMonths: 2, P3: 53.0, P15: 55.0, P50: 57.1, P85: 59.2, P97: 61.1},
			{AgeMonths: 4, P3: 58.0, P15: 60.0, P50: 62.1, P85: 64.3, P97: 66.2},
			{AgeMonths: 6, P3: 61.2, P15: 63.3, P50: 65.7, P85: 68.0, P97: 70.0},
			{AgeMonths: 9, P3: 65.3, P15: 67.6, P50: 70.1, P85: 72.8, P97: 75.0},
			{AgeMonths: 12, P3: 68.9, P15: 71.3, P50: 74.0, P85: 76.8, P97: 79.2},
			{AgeMonths: 15, P3: 72.0, P15: 74.6, P50: 77.5, P85: 80.4, P97: 83.0},
			{AgeMonths: 18, P3: 74.9, P15: 77.7, P50: 80.7, P85: 83.7, P97: 86.5},
			{AgeMonths: 24, P3: 79.3, P15: 82.5, P50: 85.7, P85: 89.1, P97: 92.2},
			{AgeMonths: 36, P3: 87.4, P15: 91.2, P50: 95.1, P85: 99.0, P97: 102.7},
			{AgeMonths: 48, P3: 94.1, P15: 98.4, P50: 102.7, P85: 107.0, P97: 111.3},
			{AgeMonths: 60, P3: 99.9, P15: 104.7, P50: 109.4, P85: 114.2, P97: 118.9},
		},
	},
	MetricWeight: {
		SexMale: {
			{AgeMonths: 0, P3: 2.5, P15: 2.9, P50: 3.3, P85: 3.9, P97: 4.3},
			{AgeMonths: 2, P3: 4.3, P15: 4.9, P50: 5.6, P85: 6.3, P97: 7.0},
			{AgeMonths: 4, P3: 5.6, P15: 6.2, P50: 7.0, P85: 7.9, P97: 8.6},
			{AgeMonths: 6, P3: 6.4, P15: 7.1, P50: 7.9, P85: 8.9, P97: 9.7},
			{AgeMonths: 9, P3: 7.1, P15: 7.9, P50: 8.9, P85: 10.0, P97: 10.9},
			{AgeMonths: 12, P3: 7.7, P15: 8.6, P50: 9.6, P85: 10.8, P97: 11.8},
			{AgeMonths: 15, P3: 8.3, P15: 9.2, P50: 10.3, P85: 11.6, P97: 12.7},
			{AgeMonths: 18, P3: 8.8, P15: 9.7, P50: 10.9, P85: 12.3, P97: 13.5},
			{AgeMonths: 24, P3: 9.7, P15: 10.8, P50: 12.2, P85: 13.7, P97: 15.1},
			{AgeMonths: 36, P3: 11.3, P15: 12.7, P50: 14.3, P85: 16.3, P97: 18.0},
			{AgeMonths: 48, P3: 12.7, P15: 14.3, P50: 16.3, P85: 18.7, P97: 20.9},
			{AgeMonths: 60, P3: 14.1, P15: 16.0, P50: 18.3, P85: 21.1, P97: 23.8},
		},
		SexFemale: {
			{AgeMonths: 0, P3: 2.4, P15: 2.8, P50: 3.2, P85: 3.7, P97: 4.2},
			{AgeMonths: 2, P3: 3.9, P15: 4.5, P50: 5.1, P85: 5.8, P97: 6.5},
			{AgeMonths: 4, P3: 5.0, P15: 5.6, P50: 6.4, P85: 7.3, P97: 8.1},
			{AgeMonths: 6, P3: 5.7, P15: 6.4, P50: 7.3, P85: 8.3, P97: 9.2},
			{AgeMonths: 9, P3: 6.5, P15: 7.3, P50: 8.2, P85: 9.3, P97: 10.4},
			{AgeMonths: 12, P3: 7.0, P15: 7.9, P50: 8.9, P85: 10.2, P97: 11.3},
			{AgeMonths: 15, P3: 7.6, P15: 8.5, P50: 9.6, P85: 11.0, P97: 12.2},
			{AgeMonths: 18, P3: 8.1, P15: 9.1, P50: 10.2, P85: 11.8, P97: 13.1},
			{AgeMonths: 24, P3: 9.0, P15: 10.1, P50: 11.5, P85: 13.2, P97: 14.8},
			{AgeMonths: 36, P3: 10.8, P15: 12.1, P50: 13.9, P85: 16.1, P97: 18.1},
			{AgeMonths: 48, P3: 12.3, P15: 13.9, P50: 16.1, P85: 18.9, P97: 21.5},
			{AgeMonths: 60, P3: 13.7, P15: 15.6, P50: 18.2, P85: 21.7, P97: 24.9},
		},
	},
	MetricHeadCircumference: {
		SexMale: {
			{AgeMonths: 0, P3: 32.1, P15: 33.1, P50: 34.5, P85: 35.8, P97: 37.0},
			{AgeMonths: 2, P3: 36.9, P15: 38.0, P50: 39.1, P85: 40.3, P97: 41.5},
			{AgeMonths: 4, P3: 39.2, P15: 40.2, P50: 41.4, P85: 42.6, P97: 43.8},
			{AgeMonths: 6, P3: 40.9, P15: 41.9, P50: 43.3, P85: 44.6, P97: 45.8},
			{AgeMonths: 9, P3: 42.5, P15: 43.5, P50: 45.0, P85: 46.3, P97: 47.5},
			{AgeMonths: 12, P3: 43.5, P15: 44.6, P50: 46.1, P85: 47.4, P97: 48.6},
			{AgeMonths: 15, P3: 44.2, P15: 45.3, P50: 46.8, P85: 48.1, P97: 49.3},
			{AgeMonths: 18, P3: 44.7, P15: 45.8, P50: 47.4, P85: 48.7, P97: 49.9},
			{AgeMonths: 24, P3: 45.5, P15: 46.6, P50: 48.3, P85: 49.6, P97: 50.8},
		},
		SexFemale: {
			{AgeMonths: 0, P3: 31.7, P15: 32.7, P50: 33.9, P85: 35.1, P97: 36.1},
			{AgeMonths: 2, P3: 35.8, P15: 36.9, P50: 38.3, P85: 39.5, P97: 40.5},
			{AgeMonths: 4, P3: 38.1, P15: 39.1, P50: 40.6, P85: 41.8, P97: 42.8},
			{AgeMonths: 6, P3: 39.6, P15: 40.7, P50: 42.2, P85: 43.5, P97: 44.5},
			{AgeMonths: 9, P3: 41.2, P15: 42.3, P50: 43.8, P85: 45.1, P97: 46.1},
			{AgeMonths: 12, P3: 42.2, P15: 43.3, P50: 44.9, P85: 46.2, P97: 47.2},
			{AgeMonths: 15, P3: 43.0, P15: 44.1, P50: 45.7, P85: 47.0, P97: 48.0},
			{AgeMonths: 18, P3: 43.5, P15: 44.6, P50: 46.2, P85: 47.6, P97: 48.6},
			{AgeMonths: 24, P3: 44.4, P15: 45.5, P50: 47.2, P85: 48.5, P97: 49.5},
		},
	},
}
