package schema

import "icalls/internal/value"

// The parameter vocabulary, following RFC 5545 section 3.2.
var parameters = []*Parameter{
	{
		Name:      "ALTREP",
		Purpose:   "To specify an alternate text representation for the property value.",
		ValueType: value.URI,
		Keywords:  []string{"altrep", "alternate representation"},
	},
	{
		Name:      "CN",
		Purpose:   "To specify the common name to be associated with the calendar user specified by the property.",
		ValueType: value.Text,
		Examples:  []string{"ORGANIZER;CN=\"John Smith\":mailto:jsmith@example.com"},
		Keywords:  []string{"cn", "common name"},
	},
	{
		Name:      "CUTYPE",
		Purpose:   "To identify the type of calendar user specified by the property.",
		ValueType: value.Text,
		Keywords:  []string{"cutype", "calendar user type"},
	},
	{
		Name:      "DELEGATED-FROM",
		Purpose:   "To specify the calendar users that have delegated their participation to the calendar user specified by the property.",
		ValueType: value.Text,
		Keywords:  []string{"delegated-from"},
	},
	{
		Name:      "DELEGATED-TO",
		Purpose:   "To specify the calendar users to whom the calendar user specified by the property has delegated participation.",
		ValueType: value.Text,
		Keywords:  []string{"delegated-to"},
	},
	{
		Name:      "DIR",
		Purpose:   "To specify reference to a directory entry associated with the calendar user specified by the property.",
		ValueType: value.Text,
		Keywords:  []string{"dir", "directory"},
	},
	{
		Name:      "ENCODING",
		Purpose:   "To specify an alternate inline encoding for the property value.",
		ValueType: value.Text,
		Examples:  []string{"ATTACH;FMTTYPE=text/plain;ENCODING=BASE64;VALUE=BINARY:VGhlIH"},
		Keywords:  []string{"encoding"},
	},
	{
		Name:      "FMTTYPE",
		Purpose:   "To specify the content type of a referenced object.",
		ValueType: value.Text,
		Keywords:  []string{"fmttype", "format type"},
	},
	{
		Name:      "FBTYPE",
		Purpose:   "To specify the free or busy time type.",
		ValueType: value.Text,
		Keywords:  []string{"fbtype", "free busy"},
	},
	{
		Name:      "LANGUAGE",
		Purpose:   "To specify the language for text values in a property or property parameter.",
		ValueType: value.Text,
		Examples:  []string{"SUMMARY;LANGUAGE=en-US:Company Holiday Party"},
		Keywords:  []string{"language"},
	},
	{
		Name:      "MEMBER",
		Purpose:   "To specify the group or list membership of the calendar user specified by the property.",
		ValueType: value.Text,
		Keywords:  []string{"member"},
	},
	{
		Name:      "PARTSTAT",
		Purpose:   "To specify the participation status for the calendar user specified by the property.",
		ValueType: value.Text,
		Keywords:  []string{"partstat", "participation status"},
	},
	{
		Name:      "RANGE",
		Purpose:   "To specify the effective range of recurrence instances from the instance specified by the recurrence identifier specified by the property.",
		ValueType: value.Text,
		Keywords:  []string{"range"},
	},
	{
		Name:      "RELATED",
		Purpose:   "To specify the relationship of the alarm trigger with respect to the start or end of the calendar component.",
		ValueType: value.Text,
		Keywords:  []string{"related"},
	},
	{
		Name:      "RELTYPE",
		Purpose:   "To specify the type of hierarchical relationship associated with the calendar component specified by the property.",
		ValueType: value.Text,
		Keywords:  []string{"reltype", "relationship type"},
	},
	{
		Name:      "ROLE",
		Purpose:   "To specify the participation role for the calendar user specified by the property.",
		ValueType: value.Text,
		Keywords:  []string{"role"},
	},
	{
		Name:      "RSVP",
		Purpose:   "To specify whether there is an expectation of a favor of a reply from the calendar user specified by the property value.",
		ValueType: value.Text,
		Keywords:  []string{"rsvp"},
	},
	{
		Name:      "SENT-BY",
		Purpose:   "To specify the calendar user that is acting on behalf of the calendar user specified by the property.",
		ValueType: value.Text,
		Keywords:  []string{"sent-by"},
	},
	{
		Name:      "TZID",
		Purpose:   "To specify the identifier for the time zone definition for a time component in the property value.",
		ValueType: value.Text,
		Examples:  []string{"DTSTART;TZID=America/New_York:19980119T020000"},
		Keywords:  []string{"tzid", "time zone"},
	},
	{
		Name:      "VALUE",
		Purpose:   "To explicitly specify the value type format for a property value.",
		ValueType: value.Text,
		Examples:  []string{"DTSTART;VALUE=DATE:20080402"},
		Keywords:  []string{"value"},
	},
}
