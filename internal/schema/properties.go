package schema

import "icalls/internal/value"

// The property vocabulary, following RFC 5545 section 3.7 and 3.8.
// BEGIN and END are carried as ordinary properties since no component
// nesting tree is built.
var properties = []*Property{
	{
		Name:      "BEGIN",
		Purpose:   "This property marks the beginning of a calendar component.",
		ValueType: value.Text,
		Examples:  []string{"BEGIN:VCALENDAR", "BEGIN:VEVENT"},
		Keywords:  []string{"begin"},
	},
	{
		Name:      "END",
		Purpose:   "This property marks the end of a calendar component.",
		ValueType: value.Text,
		Examples:  []string{"END:VEVENT", "END:VCALENDAR"},
		Keywords:  []string{"end"},
	},

	// Calendar properties
	{
		Name:      "CALSCALE",
		Purpose:   "This property defines the calendar scale used for the calendar information specified in the iCalendar object.",
		ValueType: value.Text,
		Examples:  []string{"CALSCALE:GREGORIAN"},
		Keywords:  []string{"calscale", "calendar scale"},
	},
	{
		Name:      "METHOD",
		Purpose:   "This property defines the iCalendar object method associated with the calendar object.",
		ValueType: value.Text,
		Examples:  []string{"METHOD:REQUEST"},
		Keywords:  []string{"method"},
	},
	{
		Name:      "PRODID",
		Purpose:   "This property specifies the identifier for the product that created the iCalendar object.",
		ValueType: value.Text,
		Examples:  []string{"PRODID:-//ABC Corporation//NONSGML My Product//EN"},
		Keywords:  []string{"prodid", "product"},
	},
	{
		Name:      "VERSION",
		Purpose:   "This property specifies the identifier corresponding to the highest version number of the iCalendar specification that is required in order to interpret the iCalendar object.",
		ValueType: value.Text,
		Examples:  []string{"VERSION:2.0"},
		Keywords:  []string{"version"},
	},

	// Descriptive component properties
	{
		Name:      "ATTACH",
		Purpose:   "This property provides the capability to associate a document object with a calendar component.",
		ValueType: value.URI,
		Examples:  []string{"ATTACH:CID:jsmith.part3.960817T083000.xyzMail@example.com"},
		Keywords:  []string{"attach", "attachment"},
	},
	{
		Name:      "CATEGORIES",
		Purpose:   "This property defines the categories for a calendar component.",
		ValueType: value.Text,
		Examples:  []string{"CATEGORIES:APPOINTMENT,EDUCATION"},
		Keywords:  []string{"categories"},
	},
	{
		Name:      "CLASS",
		Purpose:   "This property defines the access classification for a calendar component.",
		ValueType: value.Text,
		Examples:  []string{"CLASS:PUBLIC"},
		Keywords:  []string{"class", "classification"},
	},
	{
		Name:      "COMMENT",
		Purpose:   "This property specifies non-processing information intended to provide a comment to the calendar user.",
		ValueType: value.Text,
		Keywords:  []string{"comment"},
	},
	{
		Name:      "DESCRIPTION",
		Purpose:   "This property provides a more complete description of the calendar component than that provided by the \"SUMMARY\" property.",
		ValueType: value.Text,
		Examples:  []string{"DESCRIPTION:Meeting to provide technical review for \"Phoenix\" design."},
		Keywords:  []string{"description"},
	},
	{
		Name:      "GEO",
		Purpose:   "This property specifies information related to the global position for the activity specified by a calendar component.",
		ValueType: value.Float,
		Examples:  []string{"GEO:37.386013;-122.082932"},
		Keywords:  []string{"geo", "position"},
	},
	{
		Name:      "LOCATION",
		Purpose:   "This property defines the intended venue for the activity defined by a calendar component.",
		ValueType: value.Text,
		Description: "Specific venues such as conference or meeting rooms may be explicitly specified using this property.  " +
			"An alternate representation may be specified that is a URI that points to directory information with more " +
			"structured specification of the location.",
		Examples: []string{
			"LOCATION:Conference Room - F123\\, Bldg. 002",
			"LOCATION;ALTREP=\"http://xyzcorp.com/conf-rooms/f123.vcf\": Conference Room - F123\\, Bldg. 002",
		},
		Keywords: []string{"location", "venue"},
	},
	{
		Name:      "PERCENT-COMPLETE",
		Purpose:   "This property is used by an assignee or delegatee of a to-do to convey the percent completion of a to-do to the \"Organizer\".",
		ValueType: value.Integer,
		Examples:  []string{"PERCENT-COMPLETE:39"},
		Keywords:  []string{"percent-complete"},
	},
	{
		Name:      "PRIORITY",
		Purpose:   "This property defines the relative priority for a calendar component.",
		ValueType: value.Integer,
		Examples:  []string{"PRIORITY:1"},
		Keywords:  []string{"priority"},
	},
	{
		Name:      "RESOURCES",
		Purpose:   "This property defines the equipment or resources anticipated for an activity specified by a calendar component.",
		ValueType: value.Text,
		Examples:  []string{"RESOURCES:EASEL,PROJECTOR,VCR"},
		Keywords:  []string{"resources"},
	},
	{
		Name:      "STATUS",
		Purpose:   "This property defines the overall status or confirmation for the calendar component.",
		ValueType: value.Text,
		Description: "In a group-scheduled calendar component, the property is used by the \"Organizer\" to provide a " +
			"confirmation of the event to the \"Attendees\".  For example in a \"VEVENT\" calendar component, the " +
			"\"Organizer\" can indicate that a meeting is tentative, confirmed, or cancelled.",
		Examples: []string{"STATUS:TENTATIVE", "STATUS:NEEDS-ACTION", "STATUS:DRAFT"},
		Keywords: []string{"status"},
	},
	{
		Name:      "SUMMARY",
		Purpose:   "This property defines a short summary or subject for the calendar component.",
		ValueType: value.Text,
		Description: "This property is used in the \"VEVENT\", \"VTODO\", and \"VJOURNAL\" calendar components to " +
			"capture a short, one-line summary about the activity or journal entry.",
		Examples: []string{"SUMMARY:Department Party"},
		Keywords: []string{"summary"},
	},

	// Date and time component properties
	{
		Name:      "COMPLETED",
		Purpose:   "This property defines the date and time that a to-do was actually completed.",
		ValueType: value.DateTime,
		Examples:  []string{"COMPLETED:19960401T150000Z"},
		Keywords:  []string{"completed"},
	},
	{
		Name:      "DTEND",
		Purpose:   "This property specifies the date and time that a calendar component ends.",
		ValueType: value.DateTime,
		Examples:  []string{"DTEND:19960401T150000Z"},
		Keywords:  []string{"dtend", "end date"},
	},
	{
		Name:      "DUE",
		Purpose:   "This property defines the date and time that a to-do is expected to be completed.",
		ValueType: value.DateTime,
		Examples:  []string{"DUE:19980430T000000Z"},
		Keywords:  []string{"due"},
	},
	{
		Name:      "DTSTART",
		Purpose:   "This property specifies when the calendar component begins.",
		ValueType: value.DateTime,
		Examples:  []string{"DTSTART:19980118T073000Z"},
		Keywords:  []string{"dtstart", "start date"},
	},
	{
		Name:      "DURATION",
		Purpose:   "This property specifies a positive duration of time.",
		ValueType: value.Duration,
		Examples:  []string{"DURATION:PT1H0M0S"},
		Keywords:  []string{"duration"},
	},
	{
		Name:      "FREEBUSY",
		Purpose:   "This property defines one or more free or busy time intervals.",
		ValueType: value.PeriodOfTime,
		Examples:  []string{"FREEBUSY;FBTYPE=BUSY:19970308T160000Z/PT8H30M"},
		Keywords:  []string{"freebusy", "free", "busy"},
	},
	{
		Name:      "TRANSP",
		Purpose:   "This property defines whether or not an event is transparent to busy time searches.",
		ValueType: value.Text,
		Examples:  []string{"TRANSP:TRANSPARENT"},
		Keywords:  []string{"transp", "transparency"},
	},

	// Time zone component properties
	{
		Name:      "TZID",
		Purpose:   "This property specifies the text value that uniquely identifies the \"VTIMEZONE\" calendar component in the scope of an iCalendar object.",
		ValueType: value.Text,
		Examples:  []string{"TZID:America/New_York"},
		Keywords:  []string{"tzid", "time zone"},
	},
	{
		Name:      "TZNAME",
		Purpose:   "This property specifies the customary designation for a time zone description.",
		ValueType: value.Text,
		Examples:  []string{"TZNAME:EST"},
		Keywords:  []string{"tzname", "time zone name"},
	},
	{
		Name:      "TZOFFSETFROM",
		Purpose:   "This property specifies the offset that is in use prior to this time zone observance.",
		ValueType: value.UTCOffset,
		Examples:  []string{"TZOFFSETFROM:-0500"},
		Keywords:  []string{"tzoffsetfrom"},
	},
	{
		Name:      "TZOFFSETTO",
		Purpose:   "This property specifies the offset that is in use in this time zone observance.",
		ValueType: value.UTCOffset,
		Examples:  []string{"TZOFFSETTO:-0400"},
		Keywords:  []string{"tzoffsetto"},
	},
	{
		Name:      "TZURL",
		Purpose:   "This property provides a means for a \"VTIMEZONE\" component to point to a network location that can be used to retrieve an up-to-date version of itself.",
		ValueType: value.URI,
		Examples:  []string{"TZURL:http://timezones.example.org/tz/America-Los_Angeles.ics"},
		Keywords:  []string{"tzurl"},
	},

	// Relationship component properties
	{
		Name:      "ATTENDEE",
		Purpose:   "This property defines an \"Attendee\" within a calendar component.",
		ValueType: value.CalAddress,
		Examples:  []string{"ATTENDEE;CN=John Smith:mailto:jsmith@example.com"},
		Keywords:  []string{"attendee"},
	},
	{
		Name:      "CONTACT",
		Purpose:   "This property is used to represent contact information or alternately a reference to contact information associated with the calendar component.",
		ValueType: value.Text,
		Examples:  []string{"CONTACT:Jim Dolittle\\, ABC Industries\\, +1-919-555-1234"},
		Keywords:  []string{"contact"},
	},
	{
		Name:      "ORGANIZER",
		Purpose:   "This property defines the organizer for a calendar component.",
		ValueType: value.CalAddress,
		Examples:  []string{"ORGANIZER;CN=John Smith:mailto:jsmith@example.com"},
		Keywords:  []string{"organizer"},
	},
	{
		Name:      "RECURRENCE-ID",
		Purpose:   "This property is used in conjunction with the \"UID\" and \"SEQUENCE\" properties to identify a specific instance of a recurring calendar component.",
		ValueType: value.DateTime,
		Examples:  []string{"RECURRENCE-ID;RANGE=THISANDFUTURE:19960120T120000Z"},
		Keywords:  []string{"recurrence-id"},
	},
	{
		Name:      "RELATED-TO",
		Purpose:   "This property is used to represent a relationship or reference between one calendar component and another.",
		ValueType: value.Text,
		Keywords:  []string{"related-to"},
	},
	{
		Name:      "URL",
		Purpose:   "This property defines a Uniform Resource Locator (URL) associated with the iCalendar object.",
		ValueType: value.URI,
		Examples:  []string{"URL:http://example.com/pub/calendars/jsmith.ics"},
		Keywords:  []string{"url"},
	},
	{
		Name:      "UID",
		Purpose:   "This property defines the persistent, globally unique identifier for the calendar component.",
		ValueType: value.Text,
		Examples:  []string{"UID:19960401T080045Z-4000F192713-0052@example.com"},
		Keywords:  []string{"uid", "unique identifier"},
	},

	// Recurrence component properties
	{
		Name:      "EXDATE",
		Purpose:   "This property defines the list of DATE-TIME exceptions for recurring events, to-dos, journal entries, or time zone definitions.",
		ValueType: value.DateTime,
		Examples:  []string{"EXDATE:19960402T010000Z"},
		Keywords:  []string{"exdate", "exception"},
	},
	{
		Name:      "RDATE",
		Purpose:   "This property defines the list of DATE-TIME values for recurring events, to-dos, journal entries, or time zone definitions.",
		ValueType: value.DateTime,
		Examples:  []string{"RDATE;TZID=America/New_York:19970714T083000"},
		Keywords:  []string{"rdate", "recurrence date"},
	},
	{
		Name:      "RRULE",
		Purpose:   "This property defines a rule or repeating pattern for recurring events, to-dos, journal entries, or time zone definitions.",
		ValueType: value.RecurrenceRule,
		Examples:  []string{"RRULE:FREQ=DAILY;COUNT=10"},
		Keywords:  []string{"rrule", "recurrence rule", "repeat"},
	},

	// Alarm component properties
	{
		Name:      "ACTION",
		Purpose:   "This property defines the action to be invoked when an alarm is triggered.",
		ValueType: value.Text,
		Examples:  []string{"ACTION:DISPLAY"},
		Keywords:  []string{"action"},
	},
	{
		Name:      "REPEAT",
		Purpose:   "This property defines the number of times the alarm should be repeated, after the initial trigger.",
		ValueType: value.Integer,
		Examples:  []string{"REPEAT:4"},
		Keywords:  []string{"repeat"},
	},
	{
		Name:      "TRIGGER",
		Purpose:   "This property specifies when an alarm will trigger.",
		ValueType: value.Duration,
		Examples:  []string{"TRIGGER:-PT15M"},
		Keywords:  []string{"trigger"},
	},

	// Change management component properties
	{
		Name:      "CREATED",
		Purpose:   "This property specifies the date and time that the calendar information was created by the calendar user agent in the calendar store.",
		ValueType: value.DateTime,
		Examples:  []string{"CREATED:19960329T133000Z"},
		Keywords:  []string{"created"},
	},
	{
		Name:      "DTSTAMP",
		Purpose:   "This property indicates the date and time that the instance of the iCalendar object was created.",
		ValueType: value.DateTime,
		Examples:  []string{"DTSTAMP:19971210T080000Z"},
		Keywords:  []string{"dtstamp"},
	},
	{
		Name:      "LAST-MODIFIED",
		Purpose:   "This property specifies the date and time that the information associated with the calendar component was last revised in the calendar store.",
		ValueType: value.DateTime,
		Examples:  []string{"LAST-MODIFIED:19960817T133000Z"},
		Keywords:  []string{"last-modified"},
	},
	{
		Name:      "SEQUENCE",
		Purpose:   "This property defines the revision sequence number of the calendar component within a sequence of revisions.",
		ValueType: value.Integer,
		Examples:  []string{"SEQUENCE:2"},
		Keywords:  []string{"sequence", "revision"},
	},
}
