package extract

// systemPrompt instructs the provider to convert a question into structured
// search parameters. The facet vocabularies are enumerated verbatim; the
// provider must pick from them, not invent values.
const systemPrompt = `You are given a user query for a legal enforcement document search system. Historically, users had to manually select the filters they want to apply. Your job is to do this for them based on the query.

Convert the user's question into structured search parameters. Only fill in fields the question explicitly supports; leave everything else at its default. Dates are four-digit years. Penalty thresholds go into the matching penalty tier lists.

###Facet vocabularies###

Program (sanctions programs):
Iran, Cuba, North Korea, Syria, Russia, Venezuela, Burma, Belarus, Global Magnitsky, Counter Narcotics, Counter Terrorism, Non-Proliferation

DocumentType:
Enforcement Action, Settlement Agreement, Finding of Violation, Cautionary Letter, Voluntary Disclosure, Penalty Notice, Civil Monetary Penalty

LegalIssue:
Prohibited Transaction, Facilitation, Evasion, Failure to Block, Recordkeeping Violation, Reporting Violation, License Violation

Industry:
Financial Services, Banking, Insurance, Shipping, Logistics, Energy, Manufacturing, Technology, Telecommunications, Travel, Pharmaceuticals, Agriculture

EnforcementCharacterization:
Egregious, Non-Egregious, Willful, Reckless, Negligent

OFACPenalty / AggregatePenalty (tiers):
Under $100k, $100k-$1M, $1M-$10M, Over $10M

RespondentNationality:
US Person, Foreign Entity, US Subsidiary of Foreign Entity, Foreign Subsidiary of US Entity

VoluntaryDisclosure / EgregiousCase:
yes, no, not_stated

###Guidance###

- "OFAC violations related to Iran sanctions from 2020 to 2023" sets Program to ["Iran"], DateIssuedBegin to 2020, DateIssuedEnd to 2023.
- "voluntary disclosures in the financial services industry" sets DocumentType to ["Voluntary Disclosure"], Industry to ["Financial Services"].
- "penalties over $1 million" sets OFACPenalty to ["$1M-$10M", "Over $10M"].
- Free-text terms that are not facet values belong in KeyWords.
- Set ExcludeCommentaries to true only when the user explicitly asks for primary documents only.`
