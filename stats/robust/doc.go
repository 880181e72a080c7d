// Package robust provides order statistics that resist outliers:
// percentiles with linear interpolation between order statistics, the
// median and the interquartile range.
//
// Percentile p of n sorted samples s is read at position h = p/100*(n-1):
// s[floor(h)] + (h-floor(h))*(s[floor(h)+1]-s[floor(h)]). This is the
// "linear" definition used by most numeric environments.
package robust
