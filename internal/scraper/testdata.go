package scraper

// HTML fixtures mirroring the markup of the supported site: listing pages
// lead with six "random chapter" links sharing the real list's markup, the
// pager's last anchor reads "Final" and carries the last page number.

const listingPage1HTML = `<!DOCTYPE html>
<html>
<head><title>My Novel</title></head>
<body>
<nav><a href="/">Home</a> <a href="/genres">Genres</a></nav>
<h1 class="novel-title">My Novel</h1>
<div class="random-chapters">
<a href="/my-novel-77.html" title="Random 1"><span class="chapter-text">Random 1</span></a>
<a href="/my-novel-12.html" title="Random 2"><span class="chapter-text">Random 2</span></a>
<a href="/my-novel-31.html" title="Random 3"><span class="chapter-text">Random 3</span></a>
<a href="/my-novel-98.html" title="Random 4"><span class="chapter-text">Random 4</span></a>
<a href="/my-novel-5.html" title="Random 5"><span class="chapter-text">Random 5</span></a>
<a href="/my-novel-64.html" title="Random 6"><span class="chapter-text">Random 6</span></a>
</div>
<ul class="chapter-list">
<li><a href="/my-novel-1.html" title="Chapter 1"><span class="chapter-text">Chapter 1</span></a></li>
<li><a href="/my-novel-2.html" title="Chapter 2"><span class="chapter-text">Chapter 2</span></a></li>
</ul>
<div class="pager">
<a href="/my-novel/?page=1" data-page="1">1</a>
<a href="/my-novel/?page=2" data-page="2">2</a>
<a href="/my-novel/?page=2" data-page="2">Final »</a>
</div>
</body>
</html>`

const listingPage2HTML = `<!DOCTYPE html>
<html>
<head><title>My Novel</title></head>
<body>
<h1 class="novel-title">My Novel</h1>
<div class="random-chapters">
<a href="/my-novel-41.html" title="Random 1"><span class="chapter-text">Random 1</span></a>
<a href="/my-novel-8.html" title="Random 2"><span class="chapter-text">Random 2</span></a>
<a href="/my-novel-23.html" title="Random 3"><span class="chapter-text">Random 3</span></a>
<a href="/my-novel-56.html" title="Random 4"><span class="chapter-text">Random 4</span></a>
<a href="/my-novel-3.html" title="Random 5"><span class="chapter-text">Random 5</span></a>
<a href="/my-novel-90.html" title="Random 6"><span class="chapter-text">Random 6</span></a>
</div>
<ul class="chapter-list">
<li><a href="/my-novel-3.html" title="Chapter 3"><span class="chapter-text">Chapter 3</span></a></li>
</ul>
<div class="pager">
<a href="/my-novel/?page=1" data-page="1">1</a>
<a href="/my-novel/?page=2" data-page="2">2</a>
<a href="/my-novel/?page=2" data-page="2">Final »</a>
</div>
</body>
</html>`

const listingNextLinkHTML = `<!DOCTYPE html>
<html>
<body>
<h1>Other Novel</h1>
<ul class="chapter-list">
<li><a href="/other-novel-1.html"><span class="chapter-text">Chapter 1</span></a></li>
<li><a href="/other-novel-2.html"><span class="chapter-text">Chapter 2</span></a></li>
<li><a href="/other-novel-3.html"><span class="chapter-text">Chapter 3</span></a></li>
<li><a href="/other-novel-4.html"><span class="chapter-text">Chapter 4</span></a></li>
<li><a href="/other-novel-5.html"><span class="chapter-text">Chapter 5</span></a></li>
<li><a href="/other-novel-6.html"><span class="chapter-text">Chapter 6</span></a></li>
<li><a href="/other-novel-7.html"><span class="chapter-text">Chapter 7</span></a></li>
</ul>
<a rel="next" href="/other-novel/?page=2">Next »</a>
</body>
</html>`

const chapterPageHTML = `<!DOCTYPE html>
<html>
<head><title>Chapter 1 - My Novel</title></head>
<body>
<nav class="breadcrumbs"><a href="/">Home</a> » <a href="/my-novel/">My Novel</a></nav>
<h2 class="chapter-title">Chapter 1: The Beginning</h2>
<div id="chapter-content">
<p>It was a quiet morning in the village.</p>
<script>trackPageView();</script>
<p>Nobody expected what came next &amp; nobody was ready.</p>
<p>The bell rang three times.</p>
</div>
<div class="chapter-nav"><a href="/my-novel-2.html">Next Chapter</a></div>
<footer>Copyright notice and site links</footer>
</body>
</html>`

const chapterPageNoContentHTML = `<!DOCTYPE html>
<html>
<body>
<h2 class="chapter-title">Chapter 9: Missing</h2>
<div class="error">This chapter has been removed.</div>
</body>
</html>`

const chapterPageNoTitleHTML = `<!DOCTYPE html>
<html>
<body>
<div id="chapter-content"><p>Orphan text without a heading.</p></div>
</body>
</html>`
