package service

// analysisPromptTemplate is the instruction sent with every analysis request.
// The document text is appended after it. The wording is a tunable asset:
// OpenAIAnalyzer.SetPromptTemplate swaps it out without touching the call
// path.
const analysisPromptTemplate = `The following document is a course syllabus. Your task is to extract and display the following information in the exact format provided:

# Methods of Evaluation
A breakdown of the methods of evaluation. This will likely be grouped in one section of the syllabus, and could include due dates and percentages. In a table, include the name of the evaluation method, the percent weight of the final course grade, and a date if applicable.
Use the exact names of the methods of evaluation provided, do not change anything from the document. Here is the format of the table:

    Name | % of course grade | Date if applicable

# Weekly Schedule
Formatted in a table, a week-by-week schedule of all required items for the course. This includes any tasks that are due, and any lectures, labs, or tutorials that must be attended in the week. If a particular type of activity (eg. lab) does not apply to the course, omit its column from the table. Here is an example week by week schedule table:

    Week 1 | This week's course material | Labs to attend | Quizzes or assignments due
    Week 2 | This week's course material | Labs to attend | Quizzes or assignments due
    Week 3 | This week's course material | Labs to attend | Quizzes or assignments due
    etc.

Here is the document text:
`
