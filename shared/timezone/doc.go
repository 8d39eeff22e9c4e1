// Package timezone pins every timestamp the portal produces to the hostel's
// local zone (APP_TIMEZONE, an IANA name such as "Asia/Kolkata").
//
// Calendar logic depends on it: the mess menu week and the nightly jobs
// start at local midnight, not UTC midnight. An unknown or empty zone falls
// back to UTC with a log line.
//
//	today := timezone.Today()
//	week := timezone.Days(today, 7)
//	stamp := timezone.Format(timezone.Now(), constant.DateFormat)
package timezone
