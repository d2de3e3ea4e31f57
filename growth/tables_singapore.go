/*
 * Copyright 2025 Sproutbook Authors
 * SPDX-License-Identifier: Apache-2.0
 */
package growth

// Singapore national growth reference tables, tabulated at the same
// ages as the WHO tables. The curves sit slightly below the WHO
// medians, so the same measurement can fall into a different band
// under each standard.
var singaporeTables = map[Metric]map[Sex][]Breakpoint{
	MetricHeight: {
		SexMale: {
			{AgeMonths: 0, P3: 45.7, P15: 47.5, P50: 49.4, P85: 51.3, P97: 52.9},
			{AgeMonths: 2, P3: 53.8, P15: 55.8, P50: 57.8, P85: 59.9, P97: 61.6},
			{AgeMonths: 4, P3: 59.1, P15: 61.1, P50: 63.3, P85: 65.4, P97: 67.2},
			{AgeMonths: 6, P3: 62.7, P15: 64.8, P50: 67.0, P85: 69.2, P97: 71.0},
			{AgeMonths: 9, P3: 66.9, P15: 69.1, P50: 71.4, P85: 73.6, P97: 75.6},
			{AgeMonths: 12, P3: 70.4, P15: 72.8, P50: 75.2, P85: 77.5, P97: 79.8},
			{AgeMonths: 15, P3: 73.5, P15: 76.0, P50: 78.5, P85: 81.1, P97: 83.6},
			{AgeMonths: 18, P3: 76.3, P15: 79.0, P50: 81.7, P85: 84.4, P97: 87.1},
			{AgeMonths: 24, P3: 80.4, P15: 83.4, P50: 86.4, P85: 89.5, P97: 92.5},
			{AgeMonths: 36, P3: 88.0, P15: 91.6, P50: 95.3, P85: 99.0, P97: 102.7},
			{AgeMonths: 48, P3: 94.2, P15: 98.3, P50: 102.5, P85: 106.7, P97: 110.9},
			{AgeMonths: 60, P3: 99.9, P15: 104.5, P50: 109.1, P85: 113.7, P97: 118.3},
		},
		SexFemale: {
			{AgeMonths: 0, P3: 45.0, P15: 46.8, P50: 48.7, P85: 50.6, P97: 52.4},
			{AgeMonths: 2, P3: 52.4, P15: 54.4, P50: 56.5, P85: 58.6, P97: 60.5},
			{AgeMonths: 4, P3: 57.4, P15: 59.4, P50: 61.5, P85: 63.7, P97: 65.6},
			{AgeMonths: 6, P3: 60.6, P15: 62.7, P50: 65.1, P85: 67.4, P97: 69.4},
			{AgeMonths: 9, P3: 64.7, P15: 67.0, P50: 69.5, P85: 72.2, P97: 74.4},
			{AgeMonths: 12, P3: 68.3, P15: 70.7, P50: 73.4, P85: 76.2, P97: 78.6},
			{AgeMonths: 15, P3: 71.4, P15: 74.0, P50: 76.9, P85: 79.8, P97: 82.4},
			{AgeMonths: 18, P3: 74.3, P15: 77.1, P50: 80.1, P85: 83.1, P97: 85.9},
			{AgeMonths: 24, P3: 78.7, P15: 81.9, P50: 85.1, P85: 88.5, P97: 91.6},
			{AgeMonths: 36, P3: 86.7, P15: 90.5, P50: 94.4, P85: 98.3, P97: 102.0},
			{AgeMonths: 48, P3: 93.4, P15: 97.7, P50: 102.0, P85: 106.3, P97: 110.6},
			{AgeMonths: 60, P3: 99.1, P15: 103.9, P50: 108.6, P85: 113.4, P97: 118.1},
		},
	},
	MetricWeight: {
		SexMale: {
			{AgeMonths: 0, P3: 2.4, P15: 2.8, P50: 3.2, P85: 3.8, P97: 4.2},
			{AgeMonths: 2, P3: 4.1, P15: 4.7, P50: 5.4, P85: 6.1, P97: 6.8},
			{AgeMonths: 4, P3: 5.4, P15: 6.0, P50: 6.8, P85: 7.7, P97: 8.4},
			{AgeMonths: 6, P3: 6.2, P15: 6.9, P50: 7.7, P85: 8.7, P97: 9.5},
			{AgeMonths: 9, P3: 6.9, P15: 7.7, P50: 8.7, P85: 9.8, P97: 10.7},
			{AgeMonths: 12, P3: 7.5, P15: 8.4, P50: 9.4, P85: 10.6, P97: 11.6},
			{AgeMonths: 15, P3: 8.1, P15: 9.0, P50: 10.1, P85: 11.4, P97: 12.5},
			{AgeMonths: 18, P3: 8.6, P15: 9.5, P50: 10.7, P85: 12.1, P97: 13.3},
			{AgeMonths: 24, P3: 9.5, P15: 10.6, P50: 12.0, P85: 13.5, P97: 14.9},
			{AgeMonths: 36, P3: 11.1, P15: 12.5, P50: 14.1, P85: 16.1, P97: 17.8},
			{AgeMonths: 48, P3: 12.5, P15: 14.1, P50: 16.1, P85: 18.5, P97: 20.7},
			{AgeMonths: 60, P3: 13.9, P15: 15.8, P50: 18.1, P85: 20.9, P97: 23.6},
		},
		SexFemale: {
			{AgeMonths: 0, P3: 2.3, P15: 2.7, P50: 3.1, P85: 3.6, P97: 4.1},
			{AgeMonths: 2, P3: 3.7, P15: 4.3, P50: 4.9, P85: 5.6, P97: 6.3},
			{AgeMonths: 4, P3: 4.8, P15: 5.4, P50: 6.2, P85: 7.1, P97: 7.9},
			{AgeMonths: 6, P3: 5.5, P15: 6.2, P50: 7.1, P85: 8.1, P97: 9.0},
			{AgeMonths: 9, P3: 6.3, P15: 7.1, P50: 8.0, P85: 9.1, P97: 10.2},
			{AgeMonths: 12, P3: 6.8, P15: 7.7, P50: 8.7, P85: 10.0, P97: 11.1},
			{AgeMonths: 15, P3: 7.4, P15: 8.3, P50: 9.4, P85: 10.8, P97: 12.0},
			{AgeMonths: 18, P3: 7.9, P15: 8.9, P50: 10.0, P85: 11.6, P97: 12.9},
			{AgeMonths: 24, P3: 8.8, P15: 9.9, P50: 11.3, P85: 13.0, P97: 14.6},
			{AgeMonths: 36, P3: 10.6, P15: 11.9, P50: 13.7, P85: 15.9, P97: 17.9},
			{AgeMonths: 48, P3: 12.1, P15: 13.7, P50: 15.9, P85: 18.7, P97: 21.3},
			{AgeMonths: 60, P3: 13.5, P15: 15.4, P50: 18.0, P85: 21.5, P97: 24.7},
		},
	},
	MetricHeadCircumference: {
		SexMale: {
			{AgeMonths: 0, P3: 31.8, P15: 32.8, P50: 34.2, P85: 35.5, P97: 36.7},
			{AgeMonths: 2, P3: 36.6, P15: 37.7, P50: 38.8, P85: 40.0, P97: 41.2},
			{AgeMonths: 4, P3: 38.9, P15: 39.9, P50: 41.1, P85: 42.3, P97: 43.5},
			{AgeMonths: 6, P3: 40.6, P15: 41.6, P50: 43.0, P85: 44.3, P97: 45.5},
			{AgeMonths: 9, P3: 42.2, P15: 43.2, P50: 44.7, P85: 46.0, P97: 47.2},
			{AgeMonths: 12, P3: 43.2, P15: 44.3, P50: 45.8, P85: 47.1, P97: 48.3},
			{AgeMonths: 15, P3: 43.9, P15: 45.0, P50: 46.5, P85: 47.8, P97: 49.0},
			{AgeMonths: 18, P3: 44.4, P15: 45.5, P50: 47.1, P85: 48.4, P97: 49.6},
			{AgeMonths: 24, P3: 45.2, P15: 46.3, P50: 48.0, P85: 49.3, P97: 50.5},
		},
		SexFemale: {
			{AgeMonths: 0, P3: 31.4, P15: 32.4, P50: 33.6, P85: 34.8, P97: 35.8},
			{AgeMonths: 2, P3: 35.5, P15: 36.6, P50: 38.0, P85: 39.2, P97: 40.2},
			{AgeMonths: 4, P3: 37.8, P15: 38.8, P50: 40.3, P85: 41.5, P97: 42.5},
			{AgeMonths: 6, P3: 39.3, P15: 40.4, P50: 41.9, P85: 43.2, P97: 44.2},
			{AgeMonths: 9, P3: 40.9, P15: 42.0, P50: 43.5, P85: 44.8, P97: 45.8},
			{AgeMonths: 12, P3: 41.9, P15: 43.0, P50: 44.6, P85: 45.9, P97: 46.9},
			{AgeMonths: 15, P3: 42.7, P15: 43.8, P50: 45.4, P85: 46.7, P97: 47.7},
			{AgeMonths: 18, P3: 43.2, P15: 44.3, P50: 45.9, P85: 47.3, P97: 48.3},
			{AgeMonths: 24, P3: 44.1, P15: 45.2, P50: 46.9, P85: 48.2, P97: 49.2},
		},
	},
}
