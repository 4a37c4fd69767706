package layout

const baseCSS = `body{margin:0;font-family:system-ui,-apple-system,"Segoe UI",Roboto,sans-serif;line-height:1.5}` +
	`.navbar{display:flex;align-items:center;gap:1rem;height:54px;padding:0 1rem;top:0;left:0;right:0;z-index:10}` +
	`.fixed-top{position:fixed}` +
	`.navbar a{color:#fff;text-decoration:none}` +
	`.navbar-brand{font-weight:700;font-size:1.25rem}` +
	`.navbar-nav{display:flex;gap:1rem;list-style:none;margin:0;padding:0}` +
	`.grid{display:grid;gap:1.5rem}` +
	`.grid-cols-2{grid-template-columns:repeat(2,minmax(0,1fr))}` +
	`.grid-cols-3{grid-template-columns:repeat(3,minmax(0,1fr))}` +
	`@media (max-width:768px){.grid{grid-template-columns:1fr}}` +
	`.card{border:1px solid #ddd;border-radius:.5rem;overflow:hidden}` +
	`.card-img-top{width:100%;display:block}` +
	`.card-body{padding:1rem}` +
	`.tag-links a{margin-right:.5rem}` +
	`pre.chroma{padding:1rem;overflow-x:auto}`
