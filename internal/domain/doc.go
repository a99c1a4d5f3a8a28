// Package domain models non-nominal periods for the SDO spacecraft and its
// AIA and HMI instruments.
//
// # Data Sources
//
// The timeline is aggregated from public LMSAL/JSOC operational pages:
//
//   - sdo_spacecraft_night.txt — whitespace-aligned text, spacecraft night
//     (eclipse) windows, YY-DOY-HH:MM:SS timestamps.
//   - jsocobs_info<year>.html — one page per year listing observation-impacting
//     events as an HTML table (start, end, SDO event, AIA description, HMI
//     description).
//   - jsocinst_calibrations.html — an index page linking per-campaign text
//     files of calibration windows, dd-Mon-yy HH:MM:SS timestamps.
//
// # Timestamp Conventions
//
// Upstream values come in mixed granularity. Known layouts:
//
//	2006-01-02T15:04:05   ISO, the canonical published form
//	2006-01-02            date only
//	06-Apr-10 21:11:55    calibration files
//	9-Apr-2010 07:30:00   calibration files, four-digit year
//	16-152-05:33:05       YY-DOY-HH:MM:SS, spacecraft night
//	2010.11.10_06:01:20   occasional JSOC form
//	2010.05.18            date only, dotted
//
// Two normalization rules apply, and only these two:
//
//   - a date-only value expands to midnight (00:00:00 UTC) of that day;
//   - a missing end becomes the literal sentinel "Unknown".
//
// Everything else passes through unchanged or is rejected with a
// ValidationError. A record without a usable start is rejected: every
// non-nominal period requires a start time. The upstream pages explicitly
// disclaim accuracy, and so does the published table.
package domain
